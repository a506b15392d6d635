package repository

import (
	"context"

	"huiqs/internal/domain/entity"
)

type EnterpriseOrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.EnterpriseOrder, error)
}
