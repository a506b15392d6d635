package repository

import (
	"context"

	"huiqs/internal/domain/entity"
)

type TravelPackageRepository interface {
	GetByID(ctx context.Context, id string) (*entity.TravelPackage, error)
	IncrementViews(ctx context.Context, id string) error
}
