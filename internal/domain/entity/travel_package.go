package entity

import "time"

type TravelPackage struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Destination string    `json:"destination" firestore:"destination"`
	AgentID     string    `json:"agent_id" firestore:"agentId"`
	Price       float64   `json:"price" firestore:"price"`
	Views       int64     `json:"views" firestore:"views"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
