package models

import (
	"fmt"
	"time"
)

type Order struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Reference     string     `gorm:"type:varchar(64);uniqueIndex" json:"reference"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	User          *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TableID       *uint      `gorm:"index" json:"table_id,omitempty"`
	Table         *Table     `gorm:"foreignKey:TableID" json:"table,omitempty"`
	CustomerName  string     `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerPhone string     `gorm:"type:varchar(50)" json:"customer_phone"`
	ArriveDate    string     `gorm:"type:varchar(10);not null;index" json:"arrive_date"`
	ArriveTime    string     `gorm:"type:varchar(8);not null" json:"arrive_time"`
	PartySize     int        `gorm:"not null" json:"party_size"`
	Notes         string     `gorm:"type:text" json:"notes"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ActivatedAt   *time.Time `json:"activated_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

// DisplayCode -> kode pendek untuk ditampilkan ke customer
func (o *Order) DisplayCode() string {
	if len(o.Reference) >= 8 {
		return fmt.Sprintf("BK-%s", o.Reference[:8])
	}
	return fmt.Sprintf("BK-%d", o.ID)
}
