package models

import "time"

type Event struct {
	Base
	UserID string    `gorm:"index;not null" json:"userId"`
	Title  string    `gorm:"not null" json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	AllDay bool      `json:"allDay"`
}
