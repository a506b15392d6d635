package entity

import "time"

type Order struct {
	ID          string    `json:"id" firestore:"id"`
	OrderNumber string    `json:"order_number" firestore:"orderNumber"`
	UserID      string    `json:"user_id" firestore:"userId"`
	PackageID   string    `json:"package_id" firestore:"packageId"`
	Status      string    `json:"status" firestore:"status"`
	Amount      float64   `json:"amount" firestore:"amount"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`

	// Hydrated from the packages collection on read.
	TravelPackage *TravelPackage `json:"travel_packages,omitempty" firestore:"-"`
}
