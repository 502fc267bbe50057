package model

import "time"

// Reservation represents a booking of a catway for a date range.
// CatwayNumber references Catway.Number; the reference is checked by the
// service layer, not the store.
type Reservation struct {
	ID           int64
	CatwayNumber int64
	ClientName   string
	BoatName     string
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateReservationRequest represents a reservation creation request.
// The catway number comes from the URL path, not the body.
type CreateReservationRequest struct {
	ClientName string `json:"clientName"`
	BoatName   string `json:"boatName,omitempty"`
	StartDate  Date   `json:"startDate"`
	EndDate    Date   `json:"endDate"`
}

// UpdateReservationRequest represents a reservation update. Nil fields are
// left unchanged; date validation runs against the resulting final pair.
type UpdateReservationRequest struct {
	ClientName *string `json:"clientName"`
	BoatName   *string `json:"boatName"`
	StartDate  *Date   `json:"startDate"`
	EndDate    *Date   `json:"endDate"`
}

// ReservationResponse represents a reservation in API responses.
type ReservationResponse struct {
	ID           int64     `json:"id"`
	CatwayNumber int64     `json:"catwayNumber"`
	ClientName   string    `json:"clientName"`
	BoatName     string    `json:"boatName,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
