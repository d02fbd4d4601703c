package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string         `json:"description"`
	Price        float64        `gorm:"not null" json:"price"`
	ImageURL     string         `json:"image_url"`
	Images       StringList     `gorm:"type:jsonb" json:"images"`
	CategoryID   uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	Stock        int            `json:"stock"`
	Featured     bool           `gorm:"index" json:"featured"`
	Rating       float64        `json:"rating"`
	ReviewsCount int            `json:"reviews_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
