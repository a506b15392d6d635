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

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	doc, err := r.client.Collection("profiles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	query := r.client.Collection("profiles").OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Firestore error while counting profiles: %v", err)
		return nil, 0, errors.Internal("Failed to count profiles", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var profiles []*entity.Profile

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating profiles: %v", err)
			return nil, 0, errors.Internal("Failed to iterate profiles", err)
		}

		var profile entity.Profile
		if err := doc.DataTo(&profile); err != nil {
			log.Printf("Error parsing profile data: %v", err)
			return nil, 0, errors.Internal("Failed to parse profile data", err)
		}

		profiles = append(profiles, &profile)
	}

	return profiles, total, nil
}
