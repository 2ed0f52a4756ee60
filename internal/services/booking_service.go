package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/utils"
)

// UnknownStop labels a booking endpoint whose stop row no longer exists.
const UnknownStop = "Unknown"

// BookingService drives the booking ledger: the settlement pass over a
// customer's bookings, refund totals, and booking creation.
type BookingService struct {
	CustomerRepo  repositories.CustomerRepository
	BookingRepo   repositories.BookingRepository
	ItineraryRepo repositories.ItineraryRepository
	TripRepo      repositories.TripRepository
	DB            *sql.DB
	RequestID     string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) customers() repositories.CustomerRepository {
	if s.CustomerRepo.DB != nil {
		return s.CustomerRepo
	}
	return repositories.CustomerRepository{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) itineraries() repositories.ItineraryRepository {
	if s.ItineraryRepo.DB != nil {
		return s.ItineraryRepo
	}
	return repositories.ItineraryRepository{DB: s.db()}
}

func (s BookingService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

// TripsForCustomer settles and returns all of the customer's bookings.
//
// This is a write-triggering read: every listed booking gets its cost and
// refunded_credit recomputed from the current itinerary and written back.
// The whole pass runs inside one transaction; on any failure nothing is
// persisted. Itineraries are loaded once per trip, not per booking.
//
// Two concurrent passes over the same customer are not serialized; the last
// writer wins. With an unchanged itinerary both writers store identical
// values, so the race is benign until the itinerary itself changes.
func (s BookingService) TripsForCustomer(email string) ([]models.CustomerTripView, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ValidationError{Field: "email", Msg: "must not be empty"}
	}

	ok, err := s.customers().Exists(email)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to look up customer", Err: err}
	}
	if !ok {
		return nil, domain.NotFoundError{Resource: "Customer"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to start settlement", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	records, err := s.bookings().ListByCustomerWith(tx, email)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}

	itineraries := map[int]repositories.Itinerary{}
	views := make([]models.CustomerTripView, 0, len(records))

	for _, rec := range records {
		it, cached := itineraries[rec.TripID]
		if !cached {
			it, err = s.itineraries().LoadWith(tx, rec.TripID)
			if err != nil {
				return nil, domain.InternalError{Msg: "failed to load itinerary", Err: err}
			}
			itineraries[rec.TripID] = it
		}

		settled := SettleLeg(it, rec.StartStop, rec.EndStop)
		if err := s.bookings().UpdateSettlementWith(tx, rec.CustomerTripID, settled.Cost, settled.RefundedCredit); err != nil {
			return nil, domain.InternalError{Msg: "failed to persist settlement", Err: err}
		}

		start := rec.StartStop
		if !rec.StartExists {
			start = UnknownStop
		}
		end := rec.EndStop
		if !rec.EndExists {
			end = UnknownStop
		}

		views = append(views, models.CustomerTripView{
			TripID:         rec.TripID,
			DateTime:       rec.TripDateTime,
			Cost:           settled.Cost,
			RefundedCredit: settled.RefundedCredit,
			StartPosition:  start,
			EndPosition:    end,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.InternalError{Msg: "failed to commit settlement", Err: err}
	}
	committed = true

	utils.LogEvent(s.RequestID, "booking", "settle_pass", fmt.Sprintf("customer=%s bookings=%d", email, len(views)))
	return views, nil
}

// TotalRefundedCredit sums the customer's refunds, treating unset refunds
// as zero.
func (s BookingService) TotalRefundedCredit(email string) (float64, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return 0, domain.ValidationError{Field: "email", Msg: "must not be empty"}
	}

	ok, err := s.customers().Exists(email)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to look up customer", Err: err}
	}
	if !ok {
		return 0, domain.NotFoundError{Resource: "Customer"}
	}

	total, err := s.bookings().SumRefundedCredit(email)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to sum refunds", Err: err}
	}
	return utils.Round2(total), nil
}

// CreateBooking validates and inserts a ledger row, decrementing the trip's
// capacity in the same transaction. Cost and refund stay zero until the
// first settlement pass.
func (s BookingService) CreateBooking(ct models.CustomerTrip) (int64, error) {
	ct.CustomerEmail = strings.TrimSpace(ct.CustomerEmail)
	ct.StartStop = strings.TrimSpace(ct.StartStop)
	ct.EndStop = strings.TrimSpace(ct.EndStop)

	switch {
	case ct.TripID <= 0:
		return 0, domain.ValidationError{Field: "trip_id", Msg: "must be a positive id"}
	case ct.CustomerEmail == "":
		return 0, domain.ValidationError{Field: "customer_email", Msg: "must not be empty"}
	case ct.StartStop == "":
		return 0, domain.ValidationError{Field: "start_position", Msg: "must not be empty"}
	case ct.EndStop == "":
		return 0, domain.ValidationError{Field: "end_position", Msg: "must not be empty"}
	}

	ok, err := s.customers().Exists(ct.CustomerEmail)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to look up customer", Err: err}
	}
	if !ok {
		return 0, domain.NotFoundError{Resource: "Customer"}
	}

	ok, err = s.trips().Exists(ct.TripID)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to look up trip", Err: err}
	}
	if !ok {
		return 0, domain.NotFoundError{Resource: "Trip"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to start booking", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	id, err := s.bookings().InsertWith(tx, ct)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to create booking", Err: err}
	}

	if _, err := tx.Exec(`
        UPDATE trips SET current_capacity = current_capacity - 1
        WHERE trip_id = ? AND current_capacity > 0
    `, ct.TripID); err != nil {
		return 0, domain.InternalError{Msg: "failed to update trip capacity", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Msg: "failed to commit booking", Err: err}
	}
	committed = true

	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("customer=%s trip=%d id=%d", ct.CustomerEmail, ct.TripID, id))
	return id, nil
}
