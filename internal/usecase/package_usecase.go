package usecase

import (
	"context"
	"log"

	"huiqs/internal/domain/repository"
)

type PackageUseCase struct {
	packageRepo repository.TravelPackageRepository
}

func NewPackageUseCase(packageRepo repository.TravelPackageRepository) *PackageUseCase {
	return &PackageUseCase{
		packageRepo: packageRepo,
	}
}

// IncrementViews bumps the package view counter. Lost increments under
// concurrent bumps are acceptable for a popularity signal.
func (uc *PackageUseCase) IncrementViews(ctx context.Context, packageID string) error {
	if err := uc.packageRepo.IncrementViews(ctx, packageID); err != nil {
		log.Printf("IncrementViews Error: package %s: %v", packageID, err)
		return err
	}
	return nil
}
