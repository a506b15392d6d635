package repository

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	if order.PackageID != "" {
		pkgDoc, err := r.client.Collection("travel_packages").Doc(order.PackageID).Get(ctx)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				log.Printf("GetByID Warning: package %s lookup for order %s failed: %v", order.PackageID, id, err)
			}
			return &order, nil
		}

		var pkg entity.TravelPackage
		if err := pkgDoc.DataTo(&pkg); err != nil {
			log.Printf("GetByID Warning: failed to parse package %s for order %s: %v", order.PackageID, id, err)
			return &order, nil
		}
		order.TravelPackage = &pkg
	}

	return &order, nil
}
