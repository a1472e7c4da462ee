package service

import (
	"Nuremento/internal/clock"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength       = 120
	maxDescriptionLength = 2000
	maxLocationLength    = 120
	maxMoodLength        = 60
)

// requiredText обрезает пробелы и проверяет, что значение не пустое и не длиннее limit символов.
func requiredText(field, value string, limit int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalid(field, fmt.Sprintf("%s is required", field))
	}
	if utf8.RuneCountInString(v) > limit {
		return "", invalid(field, fmt.Sprintf("%s must be %d characters or less.", field, limit))
	}
	return v, nil
}

// optionalText: пустое значение превращается в nil.
func optionalText(field string, value *string, limit int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(v) > limit {
		return nil, invalid(field, fmt.Sprintf("%s must be %d characters or less.", field, limit))
	}
	return &v, nil
}

func optionalDay(field string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil, nil
	}
	d, err := clock.ParseDay(v)
	if err != nil {
		return nil, invalid(field, fmt.Sprintf("%s must be a valid YYYY-MM-DD date.", field))
	}
	s := d.String()
	return &s, nil
}
