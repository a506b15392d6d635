package repository

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) ListVisible(ctx context.Context, filter repository.MessageFilter) ([]*entity.Message, error) {
	col := r.client.Collection("messages")

	var query firestore.Query
	if filter.Admin {
		// Admins see rows addressed to them, all system broadcasts, and
		// their own sent rows.
		query = col.WhereEntity(firestore.OrFilter{
			Filters: []firestore.EntityFilter{
				firestore.PropertyFilter{Path: "receiverId", Operator: "==", Value: filter.ViewerID},
				firestore.PropertyFilter{Path: "kind", Operator: "==", Value: entity.MessageKindSystem},
				firestore.PropertyFilter{Path: "senderId", Operator: "==", Value: filter.ViewerID},
			},
		})
	} else {
		query = col.Where("receiverId", "==", filter.ViewerID)
	}

	iter := query.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating messages for %s: %v", filter.ViewerID, err)
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			log.Printf("Error parsing message data for %s: %v", filter.ViewerID, err)
			return nil, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	r.attachSenders(ctx, messages)

	return messages, nil
}

// attachSenders hydrates the denormalized sender snapshot for each message,
// one profile lookup per distinct sender. A missing profile leaves the
// snapshot absent rather than failing the query.
func (r *firestoreMessageRepository) attachSenders(ctx context.Context, messages []*entity.Message) {
	snapshots := make(map[string]*entity.SenderSnapshot)

	for _, message := range messages {
		if message.SenderID == "" {
			continue
		}

		snapshot, seen := snapshots[message.SenderID]
		if !seen {
			doc, err := r.client.Collection("profiles").Doc(message.SenderID).Get(ctx)
			if err != nil {
				if status.Code(err) != codes.NotFound {
					log.Printf("attachSenders Warning: profile %s lookup failed: %v", message.SenderID, err)
				}
				snapshots[message.SenderID] = nil
				continue
			}

			var profile entity.Profile
			if err := doc.DataTo(&profile); err != nil {
				log.Printf("attachSenders Warning: failed to parse profile %s: %v", message.SenderID, err)
				snapshots[message.SenderID] = nil
				continue
			}

			snapshot = &entity.SenderSnapshot{
				FullName:  profile.FullName,
				AvatarURL: profile.AvatarURL,
				Role:      profile.Role,
			}
			snapshots[message.SenderID] = snapshot
		}

		if snapshot != nil {
			message.Sender = snapshot
		}
	}
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, ids []string) error {
	return markRead(ctx, r.client, "messages", ids)
}

// markRead issues one batched read-flag update for a set of document ids.
// Setting read=true on an already-read document is a no-op, so concurrent
// fetch cycles marking the same rows are safe.
func markRead(ctx context.Context, client *firestore.Client, collection string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	bw := client.BulkWriter(ctx)
	var firstErr error
	for _, id := range ids {
		_, err := bw.Update(client.Collection(collection).Doc(id), []firestore.Update{
			{Path: "read", Value: true},
		})
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	bw.End()

	if firstErr != nil {
		return errors.Internal("Failed to mark documents read", firstErr)
	}
	return nil
}
