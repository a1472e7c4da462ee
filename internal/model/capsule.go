package model

import "time"

// TimeCapsule - сообщение, закрытое до даты OpenOn.
// Состояние блокировки не хранится: оно вычисляется из OpenOn и текущей даты.
type TimeCapsule struct {
	ID      string `gorm:"primaryKey;type:varchar(36)"`
	OwnerID string `gorm:"not null;index"`

	Title   string `gorm:"not null"`
	Message string `gorm:"type:text;not null"`
	OpenOn  string `gorm:"type:varchar(10);not null"` // YYYY-MM-DD

	OpenedAt  *time.Time
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
