package entity

import "time"

// MessageLog is an order-scoped log row, visible to the agent assigned to
// the order's package. AgentID is denormalized at write time so visibility
// can be filtered in the query.
type MessageLog struct {
	ID        string    `json:"id" firestore:"id"`
	OrderID   string    `json:"order_id" firestore:"orderId"`
	AgentID   string    `json:"agent_id" firestore:"agentId"`
	FromRole  string    `json:"from_role" firestore:"fromRole"` // "user" or "agent"
	Message   string    `json:"message" firestore:"message"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`

	// Hydrated from the orders collection on read.
	Order *Order `json:"orders,omitempty" firestore:"-"`
}
