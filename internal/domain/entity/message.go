package entity

import "time"

const (
	MessageKindDirect = "direct"
	MessageKindOrder  = "order"
	MessageKindSystem = "system"
)

// Message is the unified timeline item. Direct messages are stored in this
// shape; order-log rows are normalized into it before they leave the usecase.
type Message struct {
	ID         string    `json:"id" firestore:"id"`
	SenderID   string    `json:"sender_id" firestore:"senderId"`
	ReceiverID string    `json:"receiver_id,omitempty" firestore:"receiverId,omitempty"` // empty means broadcast
	Content    string    `json:"content" firestore:"content"`
	Kind       string    `json:"kind" firestore:"kind"` // "direct", "order", "system"
	Read       bool      `json:"read" firestore:"read"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`

	// Denormalized display snapshot of the sender, captured at fetch time.
	Sender *SenderSnapshot `json:"sender,omitempty" firestore:"-"`

	// Resolved order/package/enterprise reference. Absent until resolution
	// succeeds; resolution misses never fail the fetch.
	LinkedEntity *LinkedEntity `json:"linked_entity,omitempty" firestore:"-"`
}

type SenderSnapshot struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role"`
}

const (
	LinkedEntityOrder      = "order"
	LinkedEntityPackage    = "package"
	LinkedEntityEnterprise = "enterprise"
)

// LinkedEntity is a read-only projection of the record a message refers to.
// It is owned by the message it is attached to and never mutated afterwards.
type LinkedEntity struct {
	Kind                string `json:"kind"`
	ID                  string `json:"id"`
	OrderNumber         string `json:"order_number,omitempty"`
	PackageTitle        string `json:"package_title,omitempty"`
	Destination         string `json:"destination,omitempty"`
	DepartureLocation   string `json:"departure_location,omitempty"`
	DestinationLocation string `json:"destination_location,omitempty"`
}
