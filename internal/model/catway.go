package model

import "time"

// CatwayType distinguishes long and short mooring berths.
type CatwayType string

const (
	CatwayLong  CatwayType = "long"
	CatwayShort CatwayType = "short"
)

// Catway represents a numbered mooring berth. Number and Type are immutable
// after creation; only State may change.
type Catway struct {
	ID        int64
	Number    int64
	Type      CatwayType
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCatwayRequest represents a catway creation request.
type CreateCatwayRequest struct {
	Number int64      `json:"catwayNumber"`
	Type   CatwayType `json:"catwayType"`
	State  string     `json:"catwayState"`
}

// UpdateCatwayRequest carries the only mutable catway field.
type UpdateCatwayRequest struct {
	State string `json:"catwayState"`
}

// CatwayResponse represents a catway in API responses.
type CatwayResponse struct {
	ID        int64      `json:"id"`
	Number    int64      `json:"catwayNumber"`
	Type      CatwayType `json:"catwayType"`
	State     string     `json:"catwayState"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
