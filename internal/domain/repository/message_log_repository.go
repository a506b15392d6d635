package repository

import (
	"context"

	"huiqs/internal/domain/entity"
)

type MessageLogRepository interface {
	// ListByAgent returns log rows for orders assigned to the agent, ordered
	// by createdAt descending, with the order (and its package) hydrated.
	ListByAgent(ctx context.Context, agentID string) ([]*entity.MessageLog, error)

	MarkRead(ctx context.Context, ids []string) error
}
