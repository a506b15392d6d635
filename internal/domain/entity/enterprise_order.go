package entity

import "time"

// EnterpriseOrder is a company team-building booking. It carries route
// endpoints instead of a package reference.
type EnterpriseOrder struct {
	ID                  string    `json:"id" firestore:"id"`
	UserID              string    `json:"user_id" firestore:"userId"`
	DepartureLocation   string    `json:"departure_location" firestore:"departureLocation"`
	DestinationLocation string    `json:"destination_location" firestore:"destinationLocation"`
	PeopleCount         int       `json:"people_count" firestore:"peopleCount"`
	Status              string    `json:"status" firestore:"status"`
	CreatedAt           time.Time `json:"created_at" firestore:"createdAt"`
}
