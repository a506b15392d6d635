package repository

import (
	"context"

	"huiqs/internal/domain/entity"
)

type OrderRepository interface {
	// GetByID returns the order with its travel package hydrated when the
	// package row still exists.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
}
