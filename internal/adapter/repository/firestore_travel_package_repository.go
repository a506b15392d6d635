package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/pkg/errors"
)

type firestoreTravelPackageRepository struct {
	client *firestore.Client
}

func NewFirestoreTravelPackageRepository(client *firestore.Client) repository.TravelPackageRepository {
	return &firestoreTravelPackageRepository{
		client: client,
	}
}

func (r *firestoreTravelPackageRepository) GetByID(ctx context.Context, id string) (*entity.TravelPackage, error) {
	doc, err := r.client.Collection("travel_packages").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Travel package", err)
		}
		return nil, errors.Internal("Failed to get travel package", err)
	}

	var pkg entity.TravelPackage
	if err := doc.DataTo(&pkg); err != nil {
		return nil, errors.Internal("Failed to parse travel package data", err)
	}

	return &pkg, nil
}

// IncrementViews bumps the popularity counter. Read-modify-write without a
// transaction: a lost increment under concurrent bumps is acceptable here.
func (r *firestoreTravelPackageRepository) IncrementViews(ctx context.Context, id string) error {
	pkg, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = r.client.Collection("travel_packages").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: pkg.Views + 1},
	})
	if err != nil {
		return errors.Internal("Failed to update views", err)
	}

	return nil
}
