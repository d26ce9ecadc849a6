package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
)

// Draft is a booking under construction. It is owned by a single wizard.
type Draft struct {
	DepartureDate time.Time      `json:"departureDate"`
	ReturnDate    time.Time      `json:"returnDate"`
	Passengers    int            `json:"passengers"`
	Destination   *Destination   `json:"destination"`
	SeatClass     *SeatClass     `json:"seatClass"`
	Accommodation *Accommodation `json:"accommodation"`
	TotalPrice    Money          `json:"totalPrice"`
}

// BookingRequest is the body of POST /bookings. The upstream expects snake_case.
type BookingRequest struct {
	UserID          int64     `json:"user_id"`
	DestinationID   int64     `json:"destination_id"`
	SeatClassID     int64     `json:"seat_class_id"`
	AccommodationID int64     `json:"accommodation_id"`
	DepartureDate   time.Time `json:"departure_date"`
	ReturnDate      time.Time `json:"return_date"`
	Passengers      int       `json:"passengers"`
}

type ConfirmedBooking struct {
	ID              int64          `json:"id"`
	UserID          int64          `json:"userId"`
	DestinationID   int64          `json:"destinationId"`
	SeatClassID     int64          `json:"seatClassId"`
	AccommodationID int64          `json:"accommodationId"`
	Destination     *Destination   `json:"destination,omitempty"`
	SeatClass       *SeatClass     `json:"seatClass,omitempty"`
	Accommodation   *Accommodation `json:"accommodation,omitempty"`
	DepartureDate   time.Time      `json:"departureDate"`
	ReturnDate      time.Time      `json:"returnDate"`
	Passengers      int            `json:"passengers"`
	TotalPrice      Money          `json:"totalPrice"`
	Status          BookingStatus  `json:"status"`
	BookingDate     time.Time      `json:"bookingDate"`
	Origin          Origin         `json:"origin,omitempty"`
}

type UserProfile struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FullName       string `json:"fullName"`
	Bio            string `json:"bio,omitempty"`
	TravelerLevel  int    `json:"travelerLevel"`
	TotalMiles     int64  `json:"totalMiles"`
	CompletedTrips int    `json:"completedTrips"`
	Destinations   int    `json:"destinations"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
}

type Dashboard struct {
	Profile  UserProfile        `json:"profile"`
	Bookings []ConfirmedBooking `json:"bookings"`
	Tips     []string           `json:"tips"`
	Origin   Origin             `json:"origin"`
}
