package entity

import "time"

// VerificationCode is an SMS login code, keyed by phone number (one active
// code per phone, newer codes overwrite older ones).
type VerificationCode struct {
	Phone     string    `json:"phone" firestore:"phone"`
	Code      string    `json:"code" firestore:"code"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
