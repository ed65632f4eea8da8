package models

import "time"

type Table struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name"`
	Area        string     `gorm:"type:varchar(50);not null;index" json:"area"`
	Capacity    int        `gorm:"not null" json:"capacity"`
	Status      string     `gorm:"type:varchar(50);not null;default:'available'" json:"status"`
	ActiveUntil *time.Time `json:"active_until,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}
