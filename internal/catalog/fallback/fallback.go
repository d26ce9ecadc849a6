// Package fallback holds the built-in catalog served while the upstream API is
// unreachable and offline mode is enabled.
package fallback

import (
	"math/rand/v2"
	"time"

	"spaceBooker/internal/models"
)

const (
	lunarGatewayID  int64 = 1
	marsBaseAlphaID int64 = 2
	orbitalHotelID  int64 = 4
)

func Destinations() []models.Destination {
	return []models.Destination{
		{
			ID:          lunarGatewayID,
			Name:        "Lunar Gateway Station",
			Description: "Experience the moon's orbit in this state-of-the-art space station with breathtaking views of Earth and lunar landscapes.",
			Type:        "Space Station",
			TravelTime:  "3 days",
			BasePrice:   1200000,
			ImageURL:    "/images/lunar-gateway.jpg",
			NextLaunch:  "March 15, 2025",
		},
		{
			ID:          marsBaseAlphaID,
			Name:        "Mars Base Alpha",
			Description: "Be among the first civilians to visit the red planet. Tour the first human settlement on Mars and experience 0.38g gravity.",
			Type:        "Planetary Base",
			TravelTime:  "8 months",
			BasePrice:   4500000,
			ImageURL:    "/images/mars-base.jpg",
			NextLaunch:  "July 22, 2025",
		},
		{
			ID:          orbitalHotelID,
			Name:        "Orbital Hotel Artemis",
			Description: "Luxury accommodations in Earth's orbit. Experience zero gravity living with five-star amenities.",
			Type:        "Space Hotel",
			TravelTime:  "1 day",
			BasePrice:   850000,
			ImageURL:    "/images/orbital-hotel.jpg",
			NextLaunch:  "April 5, 2025",
		},
	}
}

// destination resolves the built-in destination for id. Unknown ids are priced
// like the Orbital Hotel.
func destination(id int64) models.Destination {
	dests := Destinations()
	for _, d := range dests {
		if d.ID == id {
			return d
		}
	}

	return dests[len(dests)-1]
}

// SeatClasses returns Economy, Luxury Cabin and VIP Zero-G Suite priced at
// 1x, 1.75x and 3.5x the destination base price.
func SeatClasses(destinationID int64) []models.SeatClass {
	base := destination(destinationID).BasePrice

	return []models.SeatClass{
		{
			ID:            1,
			DestinationID: destinationID,
			Name:          "Economy",
			Description:   "Standard accommodations with essential life support and minimal personal space.",
			Price:         base,
			Features:      []string{"Basic life support", "Shared quarters", "Standard meals", "Limited storage"},
		},
		{
			ID:            2,
			DestinationID: destinationID,
			Name:          "Luxury Cabin",
			Description:   "Premium accommodations with enhanced comfort and private quarters.",
			Price:         base * 7 / 4,
			Features:      []string{"Enhanced life support", "Private cabin", "Gourmet meals", "Increased storage", "Entertainment system"},
		},
		{
			ID:            3,
			DestinationID: destinationID,
			Name:          "VIP Zero-G Suite",
			Description:   "The ultimate space travel experience with dedicated staff and exclusive access to all facilities.",
			Price:         base * 7 / 2,
			Features:      []string{"Premium life support", "Luxury suite", "Personal chef", "Exclusive excursions", "Full medical support", "Priority scheduling"},
		},
	}
}

// Accommodations returns three tiers priced per night at 1%, 2.5% and 5% of the
// destination base price, rounded to the nearest unit.
func Accommodations(destinationID int64) []models.Accommodation {
	d := destination(destinationID)
	name := shortName(d)

	return []models.Accommodation{
		{
			ID:            1,
			DestinationID: destinationID,
			Name:          "Standard Pod at " + name,
			Description:   "Basic accommodation with essential amenities and shared facilities.",
			PricePerNight: percentOf(d.BasePrice, 10),
			Features:      []string{"Shared bathroom", "Basic amenities", "Daily cleaning", "Communal dining"},
			Rating:        3.5,
		},
		{
			ID:            2,
			DestinationID: destinationID,
			Name:          "Comfort Suite at " + name,
			Description:   "Mid-tier accommodations with private facilities and enhanced comfort.",
			PricePerNight: percentOf(d.BasePrice, 25),
			Features:      []string{"Private bathroom", "Enhanced amenities", "Room service", "Entertainment system", "Small viewport"},
			Rating:        4.2,
		},
		{
			ID:            3,
			DestinationID: destinationID,
			Name:          "Luxury Habitat at " + name,
			Description:   "Premium living space with all amenities and spectacular views.",
			PricePerNight: percentOf(d.BasePrice, 50),
			Features:      []string{"Luxury bathroom", "Premium amenities", "24/7 butler service", "Gourmet dining", "Large viewport", "Private excursions"},
			Rating:        4.8,
		},
	}
}

// percentOf returns base * permille / 1000, rounded half up.
func percentOf(base models.Money, permille int64) models.Money {
	return (base*models.Money(permille) + 500) / 1000
}

func shortName(d models.Destination) string {
	if d.ID == lunarGatewayID {
		return "Lunar Gateway"
	}

	return d.Name
}

// Booking synthesizes a locally confirmed booking. It is not a real
// confirmation and is tagged with OriginFallback.
func Booking(req models.BookingRequest, draft models.Draft, now time.Time) *models.ConfirmedBooking {
	return &models.ConfirmedBooking{
		ID:              rand.Int64N(1000) + 100,
		UserID:          req.UserID,
		DestinationID:   req.DestinationID,
		SeatClassID:     req.SeatClassID,
		AccommodationID: req.AccommodationID,
		Destination:     draft.Destination,
		SeatClass:       draft.SeatClass,
		Accommodation:   draft.Accommodation,
		DepartureDate:   req.DepartureDate,
		ReturnDate:      req.ReturnDate,
		Passengers:      req.Passengers,
		TotalPrice:      draft.TotalPrice,
		Status:          models.StatusConfirmed,
		BookingDate:     now,
		Origin:          models.OriginFallback,
	}
}

func UserBookings(userID int64, now time.Time) []models.ConfirmedBooking {
	lunar := destination(lunarGatewayID)
	orbital := destination(orbitalHotelID)
	lunarSeat := SeatClasses(lunarGatewayID)[1]
	lunarAcc := Accommodations(lunarGatewayID)[1]
	orbitalSeat := SeatClasses(orbitalHotelID)[2]
	orbitalAcc := Accommodations(orbitalHotelID)[2]

	day := 24 * time.Hour

	return []models.ConfirmedBooking{
		{
			ID:              101,
			UserID:          userID,
			DestinationID:   lunar.ID,
			SeatClassID:     lunarSeat.ID,
			AccommodationID: lunarAcc.ID,
			Destination:     &lunar,
			SeatClass:       &lunarSeat,
			Accommodation:   &lunarAcc,
			DepartureDate:   now.Add(45 * day),
			ReturnDate:      now.Add(60 * day),
			Passengers:      2,
			TotalPrice:      2500000,
			Status:          models.StatusConfirmed,
			BookingDate:     now.Add(-10 * day),
			Origin:          models.OriginFallback,
		},
		{
			ID:              102,
			UserID:          userID,
			DestinationID:   orbital.ID,
			SeatClassID:     orbitalSeat.ID,
			AccommodationID: orbitalAcc.ID,
			Destination:     &orbital,
			SeatClass:       &orbitalSeat,
			Accommodation:   &orbitalAcc,
			DepartureDate:   now.Add(120 * day),
			ReturnDate:      now.Add(127 * day),
			Passengers:      1,
			TotalPrice:      3200000,
			Status:          models.StatusPending,
			BookingDate:     now.Add(-3 * day),
			Origin:          models.OriginFallback,
		},
	}
}

func UserProfile(userID int64) *models.UserProfile {
	return &models.UserProfile{
		ID:             userID,
		Username:       "astro_explorer",
		Email:          "alex@example.com",
		FullName:       "Alex Astronaut",
		Bio:            "Space enthusiast and adventure seeker",
		TravelerLevel:  3,
		TotalMiles:     15000000,
		CompletedTrips: 2,
		Destinations:   2,
		AvatarURL:      "/avatars/user1.jpg",
	}
}

func TravelTips() []string {
	return []string{
		"Stay hydrated! In space, your body doesn't signal thirst as effectively.",
		"Practice your space photography skills - the Earth looks stunning from orbit!",
		"Pack light, comfortable clothing. Remember that in zero-G, comfort is key.",
		"Prepare for space adaptation syndrome by practicing balance exercises before your trip.",
		"Bring a small memento to experience weightlessness with - it makes for a great memory.",
	}
}
