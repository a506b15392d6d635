package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/pkg/errors"
)

type firestoreVerificationCodeRepository struct {
	client *firestore.Client
}

func NewFirestoreVerificationCodeRepository(client *firestore.Client) repository.VerificationCodeRepository {
	return &firestoreVerificationCodeRepository{
		client: client,
	}
}

// Upsert keys the document by phone number so a fresh code replaces the
// previous one for the same number.
func (r *firestoreVerificationCodeRepository) Upsert(ctx context.Context, code *entity.VerificationCode) error {
	_, err := r.client.Collection("sms_verification_codes").Doc(code.Phone).Set(ctx, code)
	if err != nil {
		return errors.Internal("Failed to store verification code", err)
	}
	return nil
}
