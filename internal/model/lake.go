package model

import "time"

// LakeNote - заметка, брошенная в «озеро» для случайного всплытия.
type LakeNote struct {
	ID      string `gorm:"primaryKey;type:varchar(36)"`
	OwnerID string `gorm:"not null;index:idx_lake_notes_owner_created,priority:1"`

	Title   string `gorm:"not null"`
	Message string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"not null;index:idx_lake_notes_owner_created,priority:2" json:"created_at"`
}

// DailyPickState хранит дату последней выдачи заметки дня. Одна строка на владельца.
type DailyPickState struct {
	OwnerID      string    `gorm:"primaryKey"`
	LastServedOn string    `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	UpdatedAt    time.Time `gorm:"not null"`
}
