package orderrepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. The header and item rows go in with
// a single Create, so inside the ambient transaction they commit or roll
// back together.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRestaurant retrieves all orders of a restaurant, oldest first.
// No orders is not an error here: the result is an empty slice.
func (r *GormOrderRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at").
		Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetItem retrieves a single item under the given order.
func (r *GormOrderRepository) GetItem(ctx context.Context, orderID kernel.UUID, itemID kernel.UUID) (*order.Item, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND order_id = ?", itemID.Bytes(), orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", itemID.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// UpdateItemStatus writes the item's status and reports the affected rows.
// The caller decides whether zero rows is an anomaly.
func (r *GormOrderRepository) UpdateItemStatus(
	ctx context.Context,
	orderID kernel.UUID,
	itemID kernel.UUID,
	status order.ItemStatus,
) (int64, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate(), status.Validate()); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ? AND order_id = ?", itemID.Bytes(), orderID.Bytes()).
		Update("status", int(status))

	return result.RowsAffected, result.Error
}

// UpdateStatus writes the order's overall status and returns the order as
// the store now sees it. The write itself is not verified against affected
// rows; a vanished order surfaces through the re-read.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	status order.OrderStatus,
) (*order.Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", int(status)).Error
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

// Cancel moves the whole order and all its items to cancelled when itemID is
// nil, or only the given item otherwise.
func (r *GormOrderRepository) Cancel(ctx context.Context, orderID kernel.UUID, itemID *kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if itemID != nil {
		if err := itemID.Validate(); err != nil {
			return err
		}

		result := r.db.WithContext(ctx).
			Model(&ItemDTO{}).
			Where("id = ? AND order_id = ?", itemID.Bytes(), orderID.Bytes()).
			Update("status", int(order.ItemStatusCancelled))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("item", itemID.String())
		}

		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID.Bytes()).
		Update("status", int(order.OrderStatusCancelled))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Update("status", int(order.ItemStatusCancelled)).Error
}

// CancelStaleReceived cancels every order still in the received status whose
// creation time is before the cutoff, items included. Returns how many
// orders were cancelled.
func (r *GormOrderRepository) CancelStaleReceived(ctx context.Context, cutoff time.Time) (int64, error) {
	var staleIDs []string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND created_at < ?", int(order.OrderStatusReceived), cutoff).
		Pluck("id", &staleIDs).Error
	if err != nil {
		return 0, err
	}

	if len(staleIDs) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id IN ?", staleIDs).
		Update("status", int(order.OrderStatusCancelled))
	if result.Error != nil {
		return 0, result.Error
	}

	err = r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("order_id IN ?", staleIDs).
		Update("status", int(order.ItemStatusCancelled)).Error
	if err != nil {
		return 0, err
	}

	return result.RowsAffected, nil
}
