package models

type Destination struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	TravelTime  string `json:"travelTime"`
	BasePrice   Money  `json:"basePrice"`
	ImageURL    string `json:"imageUrl"`
	NextLaunch  string `json:"nextLaunch"`
}

// SeatClass prices are quoted per destination.
type SeatClass struct {
	ID            int64    `json:"id"`
	DestinationID int64    `json:"destinationId,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         Money    `json:"price"`
	Features      []string `json:"features"`
}

type Accommodation struct {
	ID            int64    `json:"id"`
	DestinationID int64    `json:"destinationId,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight Money    `json:"pricePerNight"`
	Features      []string `json:"features"`
	Rating        float64  `json:"rating"`
}

// Origin tells whether a value came from the upstream API or was substituted
// from built-in data while the upstream was unreachable.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)
