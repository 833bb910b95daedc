package models

// BookingRequest is the body of a booking widget submission.
type BookingRequest struct {
	Email string `json:"email"`
}
