package repository

import (
	"context"

	"huiqs/internal/domain/entity"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error)
}
