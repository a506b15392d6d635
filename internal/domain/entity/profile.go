package entity

import "time"

const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

type Profile struct {
	ID        string    `json:"id" firestore:"id"`
	FullName  string    `json:"full_name" firestore:"fullName"`
	AvatarURL string    `json:"avatar_url,omitempty" firestore:"avatarUrl,omitempty"`
	Role      string    `json:"user_role" firestore:"userRole"` // "user", "agent", "admin"
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email     string    `json:"email,omitempty" firestore:"email,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
