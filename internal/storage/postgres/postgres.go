package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"spaceBooker/internal/config"
	"spaceBooker/internal/models"
)

type Storage struct {
	DB *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS bookings (
		journal_id       BIGSERIAL PRIMARY KEY,
		booking_id       BIGINT      NOT NULL,
		user_id          BIGINT      NOT NULL,
		destination_id   BIGINT      NOT NULL,
		seat_class_id    BIGINT      NOT NULL,
		accommodation_id BIGINT      NOT NULL,
		departure_date   TIMESTAMPTZ NOT NULL,
		return_date      TIMESTAMPTZ NOT NULL,
		passengers       INT         NOT NULL,
		total_price      BIGINT      NOT NULL,
		status           TEXT        NOT NULL,
		booking_date     TIMESTAMPTZ NOT NULL,
		origin           TEXT        NOT NULL,
		selections       JSONB       NOT NULL DEFAULT '{}'
	);
	CREATE INDEX IF NOT EXISTS bookings_user_id_idx ON bookings (user_id, booking_date DESC);`

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// selections keeps the destination, seat class and accommodation as they were
// priced when the booking was made.
type selections struct {
	Destination   *models.Destination   `json:"destination,omitempty"`
	SeatClass     *models.SeatClass     `json:"seatClass,omitempty"`
	Accommodation *models.Accommodation `json:"accommodation,omitempty"`
}

func (s *Storage) SaveBooking(ctx context.Context, b models.ConfirmedBooking) error {
	query := `
		INSERT INTO bookings (booking_id, user_id, destination_id, seat_class_id, accommodation_id,
			departure_date, return_date, passengers, total_price, status, booking_date, origin, selections)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	sel, err := json.Marshal(selections{
		Destination:   b.Destination,
		SeatClass:     b.SeatClass,
		Accommodation: b.Accommodation,
	})
	if err != nil {
		return fmt.Errorf("failed to encode selections: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, query,
		b.ID,
		b.UserID,
		b.DestinationID,
		b.SeatClassID,
		b.AccommodationID,
		b.DepartureDate,
		b.ReturnDate,
		b.Passengers,
		int64(b.TotalPrice),
		string(b.Status),
		b.BookingDate,
		string(b.Origin),
		sel,
	)
	if err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	return nil
}

func (s *Storage) UserBookings(ctx context.Context, userID int64) ([]models.ConfirmedBooking, error) {
	query := `
		SELECT booking_id, user_id, destination_id, seat_class_id, accommodation_id,
			departure_date, return_date, passengers, total_price, status, booking_date, origin, selections
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.ConfirmedBooking
	for rows.Next() {
		var (
			b      models.ConfirmedBooking
			total  int64
			status string
			origin string
			raw    []byte
		)

		err = rows.Scan(
			&b.ID,
			&b.UserID,
			&b.DestinationID,
			&b.SeatClassID,
			&b.AccommodationID,
			&b.DepartureDate,
			&b.ReturnDate,
			&b.Passengers,
			&total,
			&status,
			&b.BookingDate,
			&origin,
			&raw,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		var sel selections
		if err = json.Unmarshal(raw, &sel); err != nil {
			return nil, fmt.Errorf("failed to decode selections: %w", err)
		}

		b.TotalPrice = models.Money(total)
		b.Status = models.BookingStatus(status)
		b.Origin = models.Origin(origin)
		b.Destination = sel.Destination
		b.SeatClass = sel.SeatClass
		b.Accommodation = sel.Accommodation

		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
