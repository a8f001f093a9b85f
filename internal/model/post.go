package model

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Author    string    `gorm:"size:20;not null" json:"author"`
	Password  string    `gorm:"size:100;not null" json:"-"` // bcrypt hash, never serialized
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ViewCount int       `gorm:"not null;default:0" json:"view_count"`
	Deleted   bool      `gorm:"not null;default:false;index:idx_active_time,priority:1" json:"-"`
	CreatedAt time.Time `gorm:"index:idx_active_time,priority:2,sort:desc" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
