package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

// BookingRepository owns the customer_trips ledger.
type BookingRepository struct {
	DB *sql.DB
}

// BookingRecord is a ledger row joined with the data the settlement pass
// and the enriched view need: the trip's date_time and whether the start
// and end stop rows still exist.
type BookingRecord struct {
	models.CustomerTrip
	TripDateTime string
	StartExists  bool
	EndExists    bool
}

// ListByCustomerWith loads the customer's ledger rows through the given
// querier so the settlement pass can read and write in one transaction.
func (r BookingRepository) ListByCustomerWith(q Querier, email string) ([]BookingRecord, error) {
	rows, err := q.Query(`
        SELECT ct.customer_trip_id, ct.trip_id, ct.start_stop, ct.end_stop,
               ct.customer_email, COALESCE(ct.cost, 0), COALESCE(ct.refunded_credit, 0),
               t.date_time, s1.name, s2.name
        FROM customer_trips ct
        LEFT JOIN trips t ON t.trip_id = ct.trip_id
        LEFT JOIN stops s1 ON s1.name = ct.start_stop
        LEFT JOIN stops s2 ON s2.name = ct.end_stop
        WHERE ct.customer_email = ?
        ORDER BY ct.customer_trip_id ASC
    `, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []BookingRecord{}
	for rows.Next() {
		var (
			rec      BookingRecord
			dateTime sql.NullString
			start    sql.NullString
			end      sql.NullString
		)
		if err := rows.Scan(&rec.CustomerTripID, &rec.TripID, &rec.StartStop, &rec.EndStop,
			&rec.CustomerEmail, &rec.Cost, &rec.RefundedCredit,
			&dateTime, &start, &end); err != nil {
			return nil, err
		}
		rec.TripDateTime = dateTime.String
		rec.StartExists = start.Valid
		rec.EndExists = end.Valid
		list = append(list, rec)
	}
	return list, rows.Err()
}

// UpdateSettlementWith persists cost and refunded_credit for one ledger row.
func (r BookingRepository) UpdateSettlementWith(q Querier, customerTripID int64, cost, refundedCredit float64) error {
	_, err := q.Exec(`
        UPDATE customer_trips SET cost = ?, refunded_credit = ? WHERE customer_trip_id = ?
    `, cost, refundedCredit, customerTripID)
	return err
}

// InsertWith creates a ledger row with cost/refund left at their defaults.
func (r BookingRepository) InsertWith(q Querier, ct models.CustomerTrip) (int64, error) {
	res, err := q.Exec(`
        INSERT INTO customer_trips (trip_id, start_stop, end_stop, customer_email, cost, refunded_credit)
        VALUES (?, ?, ?, ?, 0, 0)
    `, ct.TripID, ct.StartStop, ct.EndStop, ct.CustomerEmail)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SumRefundedCredit totals a customer's refunds; unset refunds count as zero.
func (r BookingRepository) SumRefundedCredit(email string) (float64, error) {
	var total float64
	err := r.DB.QueryRow(`
        SELECT COALESCE(SUM(COALESCE(refunded_credit, 0)), 0)
        FROM customer_trips
        WHERE customer_email = ?
    `, email).Scan(&total)
	return total, err
}

// GetByID loads one ledger row (for the e-ticket).
func (r BookingRepository) GetByID(customerTripID int64) (models.CustomerTrip, error) {
	var ct models.CustomerTrip
	err := r.DB.QueryRow(`
        SELECT customer_trip_id, trip_id, start_stop, end_stop, customer_email,
               COALESCE(cost, 0), COALESCE(refunded_credit, 0)
        FROM customer_trips
        WHERE customer_trip_id = ?
    `, customerTripID).Scan(&ct.CustomerTripID, &ct.TripID, &ct.StartStop, &ct.EndStop,
		&ct.CustomerEmail, &ct.Cost, &ct.RefundedCredit)
	return ct, err
}
