package usecase

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huiqs/internal/domain/entity"
	"huiqs/internal/infrastructure/ratelimit"
	"huiqs/pkg/errors"
)

type fakeSmsService struct {
	sent    []string
	codes   []string
	sendErr error
}

func (f *fakeSmsService) SendVerificationCode(ctx context.Context, phone, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, phone)
	f.codes = append(f.codes, code)
	return nil
}

type fakeCodeRepo struct {
	stored    []*entity.VerificationCode
	upsertErr error
}

func (f *fakeCodeRepo) Upsert(ctx context.Context, code *entity.VerificationCode) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.stored = append(f.stored, code)
	return nil
}

func TestSendVerificationCode(t *testing.T) {
	sms := &fakeSmsService{}
	repo := &fakeCodeRepo{}
	uc := NewSmsUseCase(sms, repo, ratelimit.NewRateLimiter())

	err := uc.SendVerificationCode(context.Background(), "138 0013 8000")

	require.NoError(t, err)
	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+8613800138000", sms.sent[0])
	require.Len(t, repo.stored, 1)
	assert.Equal(t, "+8613800138000", repo.stored[0].Phone)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), repo.stored[0].Code)
	assert.Equal(t, sms.codes[0], repo.stored[0].Code)
}

func TestSendVerificationCodeEmptyPhone(t *testing.T) {
	uc := NewSmsUseCase(&fakeSmsService{}, &fakeCodeRepo{}, ratelimit.NewRateLimiter())

	err := uc.SendVerificationCode(context.Background(), "")

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSendVerificationCodeDispatchFailureSkipsStore(t *testing.T) {
	repo := &fakeCodeRepo{}
	uc := NewSmsUseCase(&fakeSmsService{sendErr: errors.Internal("provider down", nil)}, repo, ratelimit.NewRateLimiter())

	err := uc.SendVerificationCode(context.Background(), "13800138000")

	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
	assert.Empty(t, repo.stored)
}

func TestSendVerificationCodeRateLimited(t *testing.T) {
	sms := &fakeSmsService{}
	uc := NewSmsUseCase(sms, &fakeCodeRepo{}, ratelimit.NewRateLimiter())

	for i := 0; i < 3; i++ {
		require.NoError(t, uc.SendVerificationCode(context.Background(), "13800138000"))
	}

	err := uc.SendVerificationCode(context.Background(), "13800138000")
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
	assert.Len(t, sms.sent, 3)

	// A different number is not affected.
	assert.NoError(t, uc.SendVerificationCode(context.Background(), "13900139000"))
}
