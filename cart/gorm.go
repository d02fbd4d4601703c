package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chinmay09gowda/e-commerce.website/models"
)

// gormStore persists cart rows in the cart_items table.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Fetch(ctx context.Context, sessionID string) ([]Line, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{Product: item.Product, Quantity: item.Quantity})
	}
	return lines, nil
}

func (s *gormStore) Insert(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error {
	item := models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return s.db.WithContext(ctx).Create(&item).Error
}

func (s *gormStore) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error {
	return s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}).Error
}

func (s *gormStore) Delete(ctx context.Context, sessionID string, productID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&models.CartItem{}).Error
}

func (s *gormStore) Clear(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartItem{}).Error
}
