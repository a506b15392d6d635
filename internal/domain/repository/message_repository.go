package repository

import (
	"context"

	"huiqs/internal/domain/entity"
)

// MessageFilter is the viewer-scoped visibility predicate, pushed into the
// backing query. Admin widens the predicate to a disjunction: rows addressed
// to the viewer, system broadcasts, and rows the viewer sent.
type MessageFilter struct {
	ViewerID string
	Admin    bool
}

type MessageRepository interface {
	// ListVisible returns visible messages ordered by createdAt descending,
	// with sender snapshots attached.
	ListVisible(ctx context.Context, filter MessageFilter) ([]*entity.Message, error)

	// MarkRead sets read=true for the given ids. Setting it on an
	// already-read row is harmless.
	MarkRead(ctx context.Context, ids []string) error
}
