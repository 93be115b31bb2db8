package models

import "time"

type Invoice struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID string    `gorm:"type:uuid;not null" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	Amount     int64     `gorm:"not null" json:"amount"` // đơn vị cent
	Status     string    `gorm:"size:255;not null" json:"status"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
}
