package wizard

import (
	"time"

	"spaceBooker/internal/models"
)

const day = 24 * time.Hour

// Nights returns the number of started days between departure and return.
// It is zero when return does not come after departure.
func Nights(departure, ret time.Time) int64 {
	d := ret.Sub(departure)
	if d <= 0 {
		return 0
	}

	n := int64(d / day)
	if d%day != 0 {
		n++
	}

	return n
}

// Total computes seatClass.Price*passengers + accommodation.PricePerNight*nights.
// It is zero until both a destination and a seat class are chosen; the
// accommodation term is zero while no accommodation is chosen.
func Total(d models.Draft) (models.Money, error) {
	if d.Destination == nil || d.SeatClass == nil {
		return 0, nil
	}

	total, err := d.SeatClass.Price.Mul(int64(d.Passengers))
	if err != nil {
		return 0, err
	}

	if d.Accommodation == nil {
		return total, nil
	}

	stay, err := d.Accommodation.PricePerNight.Mul(Nights(d.DepartureDate, d.ReturnDate))
	if err != nil {
		return 0, err
	}

	return total.Add(stay)
}
