package model

import "time"

// Memory - запись журнала пользователя (текст + опциональное фото).
type Memory struct {
	ID      string `gorm:"primaryKey;type:varchar(36)"`
	OwnerID string `gorm:"not null;index:idx_memories_owner_created,priority:1"`

	Title       string  `gorm:"not null"`
	Description string  `gorm:"type:text;not null"`
	Mood        *string `gorm:"type:varchar(60)"`
	Location    *string `gorm:"type:varchar(120)"`
	OccurredOn  *string `gorm:"type:varchar(10)"` // YYYY-MM-DD
	ImageKey    *string // ключ объекта в хранилище фото

	CreatedAt time.Time `gorm:"not null;index:idx_memories_owner_created,priority:2" json:"created_at"`
}
