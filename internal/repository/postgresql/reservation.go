package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/reservation"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reservationRepositoryImpl struct {
	db *database.DB
}

func NewReservationRepository(db *database.DB) reservation.ReservationRepository {
	return &reservationRepositoryImpl{db: db}
}

// Dates and times are rendered in the same text form the API accepts.
const reservationColumns = `
	id, guest_name, age, phone, email, gender, country, number_of_companions,
	to_char(expected_arrival_date, 'YYYY-MM-DD'),
	to_char(expected_arrival_time, 'HH24:MI'),
	to_char(expected_departure_date, 'YYYY-MM-DD'),
	purpose_of_visit, transportation_mode, notes`

func scanReservation(row pgx.Row) (reservation.Reservation, error) {
	var r reservation.Reservation
	err := row.Scan(
		&r.ID, &r.GuestName, &r.Age, &r.Phone, &r.Email, &r.Gender, &r.Country, &r.NumberOfCompanions,
		&r.ExpectedArrivalDate, &r.ExpectedArrivalTime, &r.ExpectedDepartureDate,
		&r.PurposeOfVisit, &r.TransportationMode, &r.Notes,
	)
	return r, err
}

// Create implements reservation.ReservationRepository.
func (r *reservationRepositoryImpl) Create(ctx context.Context, res reservation.Reservation) (reservation.Reservation, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return reservation.Reservation{}, err
	}

	query := `
		INSERT INTO reservations (
			id, guest_name, age, phone, email, gender, country, number_of_companions,
			expected_arrival_date, expected_arrival_time, expected_departure_date,
			purpose_of_visit, transportation_mode, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9::date, $10::time, NULLIF($11, '')::date,
			$12, $13, $14
		)
		RETURNING ` + reservationColumns

	created, err := scanReservation(q.QueryRow(ctx, query,
		id, res.GuestName, res.Age, res.Phone, res.Email, res.Gender, res.Country, res.NumberOfCompanions,
		res.ExpectedArrivalDate, res.ExpectedArrivalTime, res.ExpectedDepartureDate,
		res.PurposeOfVisit, res.TransportationMode, res.Notes,
	))
	if err != nil {
		return reservation.Reservation{}, fmt.Errorf("failed to create reservation: %w", err)
	}
	return created, nil
}

// GetByID implements reservation.ReservationRepository.
func (r *reservationRepositoryImpl) GetByID(ctx context.Context, id string) (reservation.Reservation, error) {
	q := GetQuerier(ctx, r.db)

	res, err := scanReservation(q.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reservation.Reservation{}, reservation.ErrReservationNotFound
		}
		return reservation.Reservation{}, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// List implements reservation.ReservationRepository.
func (r *reservationRepositoryImpl) List(ctx context.Context) ([]reservation.Reservation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY expected_arrival_date DESC, expected_arrival_time DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var result []reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		result = append(result, res)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Update implements reservation.ReservationRepository.
func (r *reservationRepositoryImpl) Update(ctx context.Context, res reservation.Reservation) (reservation.Reservation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reservations
		SET guest_name = $1, age = $2, phone = $3, email = $4, gender = $5, country = $6,
			number_of_companions = $7, expected_arrival_date = $8::date, expected_arrival_time = $9::time,
			expected_departure_date = NULLIF($10, '')::date, purpose_of_visit = $11,
			transportation_mode = $12, notes = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING ` + reservationColumns

	updated, err := scanReservation(q.QueryRow(ctx, query,
		res.GuestName, res.Age, res.Phone, res.Email, res.Gender, res.Country,
		res.NumberOfCompanions, res.ExpectedArrivalDate, res.ExpectedArrivalTime,
		res.ExpectedDepartureDate, res.PurposeOfVisit, res.TransportationMode, res.Notes, res.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reservation.Reservation{}, reservation.ErrReservationNotFound
		}
		return reservation.Reservation{}, fmt.Errorf("failed to update reservation: %w", err)
	}
	return updated, nil
}

// Delete implements reservation.ReservationRepository.
func (r *reservationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return reservation.ErrReservationNotFound
	}
	return nil
}
