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

type firestoreEnterpriseOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreEnterpriseOrderRepository(client *firestore.Client) repository.EnterpriseOrderRepository {
	return &firestoreEnterpriseOrderRepository{
		client: client,
	}
}

func (r *firestoreEnterpriseOrderRepository) GetByID(ctx context.Context, id string) (*entity.EnterpriseOrder, error) {
	doc, err := r.client.Collection("enterprise_orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Enterprise order", err)
		}
		return nil, errors.Internal("Failed to get enterprise order", err)
	}

	var order entity.EnterpriseOrder
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse enterprise order data", err)
	}

	return &order, nil
}
