package repository

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/pkg/errors"
)

type firestoreMessageLogRepository struct {
	client    *firestore.Client
	orderRepo repository.OrderRepository
}

func NewFirestoreMessageLogRepository(client *firestore.Client, orderRepo repository.OrderRepository) repository.MessageLogRepository {
	return &firestoreMessageLogRepository{
		client:    client,
		orderRepo: orderRepo,
	}
}

func (r *firestoreMessageLogRepository) ListByAgent(ctx context.Context, agentID string) ([]*entity.MessageLog, error) {
	iter := r.client.Collection("message_logs").
		Where("agentId", "==", agentID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var logs []*entity.MessageLog

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating message logs for agent %s: %v", agentID, err)
			return nil, errors.Internal("Failed to iterate message logs", err)
		}

		var row entity.MessageLog
		if err := doc.DataTo(&row); err != nil {
			log.Printf("Error parsing message log data for agent %s: %v", agentID, err)
			return nil, errors.Internal("Failed to parse message log data", err)
		}

		logs = append(logs, &row)
	}

	r.attachOrders(ctx, logs)

	return logs, nil
}

// attachOrders hydrates each log's order reference, one lookup per distinct
// order id. A missing order leaves the reference absent; the log row is
// still returned.
func (r *firestoreMessageLogRepository) attachOrders(ctx context.Context, logs []*entity.MessageLog) {
	orders := make(map[string]*entity.Order)

	for _, row := range logs {
		if row.OrderID == "" {
			continue
		}

		order, seen := orders[row.OrderID]
		if !seen {
			var err error
			order, err = r.orderRepo.GetByID(ctx, row.OrderID)
			if err != nil {
				if !errors.Is(err, "NOT_FOUND") {
					log.Printf("attachOrders Warning: order %s lookup failed: %v", row.OrderID, err)
				}
				order = nil
			}
			orders[row.OrderID] = order
		}

		row.Order = order
	}
}

func (r *firestoreMessageLogRepository) MarkRead(ctx context.Context, ids []string) error {
	return markRead(ctx, r.client, "message_logs", ids)
}
