package usecase

import (
	"context"
	"log"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
)

type UserUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewUserUseCase(profileRepo repository.ProfileRepository) *UserUseCase {
	return &UserUseCase{
		profileRepo: profileRepo,
	}
}

// ListUsers returns profiles for the admin user listing. Role enforcement
// happens in the admin middleware, not here.
func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	profiles, total, err := uc.profileRepo.List(ctx, limit, offset)
	if err != nil {
		log.Printf("ListUsers Error: %v", err)
		return nil, 0, err
	}
	return profiles, total, nil
}
