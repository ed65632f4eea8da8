package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(50)"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(50);not null;default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
