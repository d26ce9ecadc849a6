package spaceapi

import (
	"fmt"
	"time"

	"spaceBooker/internal/models"
)

// The upstream serializes datetimes with or without a zone offset.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

// wireBooking mirrors a booking after key normalization. It covers both the
// flat POST /bookings response and the nested shape of GET /users/{id}/bookings.
type wireBooking struct {
	ID              int64                 `json:"id"`
	UserID          int64                 `json:"userId"`
	DestinationID   int64                 `json:"destinationId"`
	SeatClassID     int64                 `json:"seatClassId"`
	AccommodationID int64                 `json:"accommodationId"`
	Destination     *models.Destination   `json:"destination"`
	SeatClass       *models.SeatClass     `json:"seatClass"`
	Accommodation   *models.Accommodation `json:"accommodation"`
	DepartureDate   string                `json:"departureDate"`
	ReturnDate      string                `json:"returnDate"`
	Passengers      int                   `json:"passengers"`
	TotalPrice      models.Money          `json:"totalPrice"`
	Status          string                `json:"status"`
	BookingDate     string                `json:"bookingDate"`
}

func (w wireBooking) toModel() (*models.ConfirmedBooking, error) {
	departure, err := parseTime(w.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("departure date: %w", err)
	}

	ret, err := parseTime(w.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("return date: %w", err)
	}

	booked, err := parseTime(w.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("booking date: %w", err)
	}

	b := &models.ConfirmedBooking{
		ID:              w.ID,
		UserID:          w.UserID,
		DestinationID:   w.DestinationID,
		SeatClassID:     w.SeatClassID,
		AccommodationID: w.AccommodationID,
		Destination:     w.Destination,
		SeatClass:       w.SeatClass,
		Accommodation:   w.Accommodation,
		DepartureDate:   departure,
		ReturnDate:      ret,
		Passengers:      w.Passengers,
		TotalPrice:      w.TotalPrice,
		Status:          models.BookingStatus(w.Status),
		BookingDate:     booked,
		Origin:          models.OriginLive,
	}

	if b.DestinationID == 0 && b.Destination != nil {
		b.DestinationID = b.Destination.ID
	}
	if b.SeatClassID == 0 && b.SeatClass != nil {
		b.SeatClassID = b.SeatClass.ID
	}
	if b.AccommodationID == 0 && b.Accommodation != nil {
		b.AccommodationID = b.Accommodation.ID
	}

	return b, nil
}
