package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// Ensure GormOrderRepository implements order.Repository
var _ order.Repository = (*GormOrderRepository)(nil)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Insert persists a new order. Orders are append-only, so this never updates
// an existing row; a primary key collision is surfaced as shared.ErrAlreadyExists.
func (r *GormOrderRepository) Insert(ctx context.Context, o *order.Order) error {
	m, err := models.OrderModelFromDomain(o)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("order %s: %w", o.ID, shared.ErrAlreadyExists)
		}
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}

	return nil
}

// FindByID finds an order by its identifier
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var m models.OrderModel
	if err := r.db.WithContext(ctx).First(&m, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return m.ToDomain()
}

// CountAll returns the total number of persisted orders
func (r *GormOrderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}
