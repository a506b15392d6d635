package repository

import (
	"context"

	"huiqs/internal/domain/entity"
)

type VerificationCodeRepository interface {
	// Upsert stores the code keyed by phone, replacing any previous code for
	// the same number.
	Upsert(ctx context.Context, code *entity.VerificationCode) error
}
