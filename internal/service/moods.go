package service

// moodOptions - допустимые значения настроения воспоминания.
var moodOptions = []string{
	"Amazed", "Amused", "Appreciative", "Awestruck", "Blessed", "Bold", "Brave", "Calm",
	"Celebratory", "Centered", "Cheerful", "Confident", "Connected", "Content", "Courageous",
	"Curious", "Delighted", "Determined", "Empowered", "Energised", "Engaged", "Euphoric",
	"Excited", "Fulfilled", "Gentle", "Grateful", "Grounded", "Happy", "Hopeful", "Inspired",
	"Joyful", "Lively", "Loving", "Motivated", "Nostalgic", "Optimistic", "Peaceful", "Playful",
	"Proud", "Radiant", "Refreshed", "Reflective", "Relaxed", "Relieved", "Renewed", "Rested",
	"Satisfied", "Sentimental", "Serene", "Supportive", "Tender", "Thankful", "Thrilled",
	"Trusting", "Upbeat", "Warm", "Wide-eyed", "Wistful", "Wonder-filled", "Zealous",
}

var moodSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(moodOptions))
	for _, o := range moodOptions {
		m[o] = struct{}{}
	}
	return m
}()

// IsMood сообщает, входит ли value в словарь настроений.
func IsMood(value string) bool {
	_, ok := moodSet[value]
	return ok
}

// Moods возвращает копию словаря настроений.
func Moods() []string {
	out := make([]string, len(moodOptions))
	copy(out, moodOptions)
	return out
}
