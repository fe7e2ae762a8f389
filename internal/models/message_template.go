package models

import "time"

// Modelos de mensagem WhatsApp usados pelo painel admin.
type MessageTemplate struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
