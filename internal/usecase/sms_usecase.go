package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"time"

	"huiqs/internal/domain/entity"
	"huiqs/internal/domain/repository"
	"huiqs/internal/domain/service"
	"huiqs/internal/infrastructure/ratelimit"
	"huiqs/pkg/errors"
)

var nonDigitPattern = regexp.MustCompile(`\D`)

type SmsUseCase struct {
	smsService  service.SmsService
	codeRepo    repository.VerificationCodeRepository
	rateLimiter *ratelimit.RateLimiter
}

func NewSmsUseCase(smsService service.SmsService, codeRepo repository.VerificationCodeRepository, rateLimiter *ratelimit.RateLimiter) *SmsUseCase {
	return &SmsUseCase{
		smsService:  smsService,
		codeRepo:    codeRepo,
		rateLimiter: rateLimiter,
	}
}

// SendVerificationCode dispatches a 6-digit code to a mainland phone number
// and stores it keyed by phone. The stored code is only written after the
// provider accepted the dispatch.
func (uc *SmsUseCase) SendVerificationCode(ctx context.Context, phone string) error {
	if phone == "" {
		return errors.BadRequest("Phone number is required", nil)
	}

	formattedPhone := "+86" + nonDigitPattern.ReplaceAllString(phone, "")

	allowed, waitTime := uc.rateLimiter.Allow(formattedPhone, "send_sms")
	if !allowed {
		log.Printf("SendVerificationCode Rate Limited: %s must wait %v", formattedPhone, waitTime)
		return errors.TooManyRequests("Too many codes requested. Please wait before retrying")
	}

	code := fmt.Sprintf("%06d", 100000+rand.Intn(900000))

	if err := uc.smsService.SendVerificationCode(ctx, formattedPhone, code); err != nil {
		log.Printf("SendVerificationCode Error: dispatch to %s failed: %v", formattedPhone, err)
		return errors.Internal("Failed to send verification code", err)
	}

	if err := uc.codeRepo.Upsert(ctx, &entity.VerificationCode{
		Phone:     formattedPhone,
		Code:      code,
		CreatedAt: time.Now(),
	}); err != nil {
		log.Printf("SendVerificationCode Error: failed to store code for %s: %v", formattedPhone, err)
		return errors.Internal("Failed to store verification code", err)
	}

	return nil
}
