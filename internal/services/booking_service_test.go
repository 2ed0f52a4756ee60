package services

import (
	"errors"
	"testing"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingMock(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{DB: db}
	return svc, mock, func() { db.Close() }
}

func bookingColumns() []string {
	return []string{
		"customer_trip_id", "trip_id", "start_stop", "end_stop",
		"customer_email", "cost", "refunded_credit",
		"date_time", "s1_name", "s2_name",
	}
}

func itineraryColumns() []string {
	return []string{"stop_name", "stop_order", "name", "longitude", "latitude"}
}

func TestTripsForCustomerSettlesAndPersists(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	email := "ali@example.com"

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery("FROM customer_trips ct").WithArgs(email).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, 10, "Center", "Harbor", email, 0.0, 0.0, "2025-05-01 10:00:00", "Center", "Harbor"))
	mock.ExpectQuery("FROM includes i").WithArgs(10).
		WillReturnRows(sqlmock.NewRows(itineraryColumns()).
			AddRow("Center", 1, "Center", 33.02, 35.20).
			AddRow("Mall", 2, "Mall", 33.03, 35.21).
			AddRow("Harbor", 3, "Harbor", 33.04, 35.22))
	mock.ExpectExec("UPDATE customer_trips SET cost").
		WithArgs(13.0, 2.0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	views, err := svc.TripsForCustomer(email)
	if err != nil {
		t.Fatalf("settle pass error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d views, want 1", len(views))
	}
	v := views[0]
	if v.Cost != 13.00 || v.RefundedCredit != 2.00 {
		t.Fatalf("settled as cost=%v refund=%v, want 13.00/2.00", v.Cost, v.RefundedCredit)
	}
	if v.StartPosition != "Center" || v.EndPosition != "Harbor" {
		t.Fatalf("positions %q -> %q, want Center -> Harbor", v.StartPosition, v.EndPosition)
	}
	if v.TripID != 10 || v.DateTime != "2025-05-01 10:00:00" {
		t.Fatalf("trip metadata wrong: %+v", v)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripsForCustomerUnknownStopFallback(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	email := "ayse@example.com"

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	// Start stop was deleted: no stops row joins, and the includes entry for
	// it is gone too, so the leg cannot be priced.
	mock.ExpectQuery("FROM customer_trips ct").WithArgs(email).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(4, 10, "OldDepot", "Harbor", email, 13.0, 2.0, "2025-05-02 09:00:00", nil, "Harbor"))
	mock.ExpectQuery("FROM includes i").WithArgs(10).
		WillReturnRows(sqlmock.NewRows(itineraryColumns()).
			AddRow("Center", 1, "Center", 33.02, 35.20).
			AddRow("Harbor", 3, "Harbor", 33.04, 35.22))
	mock.ExpectExec("UPDATE customer_trips SET cost").
		WithArgs(15.0, 0.0, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	views, err := svc.TripsForCustomer(email)
	if err != nil {
		t.Fatalf("settle pass error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d views, want 1", len(views))
	}
	v := views[0]
	if v.Cost != 15.00 || v.RefundedCredit != 0.00 {
		t.Fatalf("fallback settled as cost=%v refund=%v, want 15.00/0.00", v.Cost, v.RefundedCredit)
	}
	if v.StartPosition != UnknownStop {
		t.Fatalf("start position = %q, want %q", v.StartPosition, UnknownStop)
	}
	if v.EndPosition != "Harbor" {
		t.Fatalf("end position = %q, want Harbor", v.EndPosition)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// An orphaned includes entry still prices the leg even though the stop row
// is gone; only the display label falls back.
func TestTripsForCustomerOrphanIncludesStillPrices(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	email := "veli@example.com"

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery("FROM customer_trips ct").WithArgs(email).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(7, 10, "OldDepot", "Harbor", email, 0.0, 0.0, "2025-05-03 08:00:00", nil, "Harbor"))
	mock.ExpectQuery("FROM includes i").WithArgs(10).
		WillReturnRows(sqlmock.NewRows(itineraryColumns()).
			AddRow("OldDepot", 1, nil, nil, nil).
			AddRow("Harbor", 3, "Harbor", 33.04, 35.22))
	mock.ExpectExec("UPDATE customer_trips SET cost").
		WithArgs(13.0, 2.0, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	views, err := svc.TripsForCustomer(email)
	if err != nil {
		t.Fatalf("settle pass error: %v", err)
	}
	v := views[0]
	if v.Cost != 13.00 || v.RefundedCredit != 2.00 {
		t.Fatalf("orphan leg settled as cost=%v refund=%v, want 13.00/2.00", v.Cost, v.RefundedCredit)
	}
	if v.StartPosition != UnknownStop {
		t.Fatalf("start position = %q, want %q", v.StartPosition, UnknownStop)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripsForCustomerLoadsItineraryOncePerTrip(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	email := "can@example.com"

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery("FROM customer_trips ct").WithArgs(email).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, 10, "Center", "Harbor", email, 0.0, 0.0, "2025-05-01 10:00:00", "Center", "Harbor").
			AddRow(2, 10, "Center", "Mall", email, 0.0, 0.0, "2025-05-01 10:00:00", "Center", "Mall"))
	// One itinerary load serves both bookings on trip 10.
	mock.ExpectQuery("FROM includes i").WithArgs(10).
		WillReturnRows(sqlmock.NewRows(itineraryColumns()).
			AddRow("Center", 1, "Center", 33.02, 35.20).
			AddRow("Mall", 2, "Mall", 33.03, 35.21).
			AddRow("Harbor", 3, "Harbor", 33.04, 35.22))
	mock.ExpectExec("UPDATE customer_trips SET cost").
		WithArgs(13.0, 2.0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE customer_trips SET cost").
		WithArgs(14.0, 1.0, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	views, err := svc.TripsForCustomer(email)
	if err != nil {
		t.Fatalf("settle pass error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripsForCustomerMissingCustomer(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.TripsForCustomer("ghost@example.com")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripsForCustomerEmptyEmail(t *testing.T) {
	svc, _, done := newBookingMock(t)
	defer done()

	_, err := svc.TripsForCustomer("   ")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTripsForCustomerWriteFailureRollsBack(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	email := "ali@example.com"

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery("FROM customer_trips ct").WithArgs(email).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, 10, "Center", "Harbor", email, 0.0, 0.0, "2025-05-01 10:00:00", "Center", "Harbor"))
	mock.ExpectQuery("FROM includes i").WithArgs(10).
		WillReturnRows(sqlmock.NewRows(itineraryColumns()).
			AddRow("Center", 1, "Center", 33.02, 35.20).
			AddRow("Harbor", 3, "Harbor", 33.04, 35.22))
	mock.ExpectExec("UPDATE customer_trips SET cost").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := svc.TripsForCustomer(email)
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTotalRefundedCredit(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	email := "ali@example.com"

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("FROM customer_trips").WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(2.0))

	total, err := svc.TotalRefundedCredit(email)
	if err != nil {
		t.Fatalf("refund total error: %v", err)
	}
	if total != 2.00 {
		t.Fatalf("total = %v, want 2.00", total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingDecrementsCapacity(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	ct := models.CustomerTrip{
		TripID:        10,
		StartStop:     "Center",
		EndStop:       "Harbor",
		CustomerEmail: "ali@example.com",
	}

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs(ct.CustomerEmail).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT(.+) FROM trips").WithArgs(ct.TripID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO customer_trips").
		WithArgs(ct.TripID, ct.StartStop, ct.EndStop, ct.CustomerEmail).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("UPDATE trips SET current_capacity").WithArgs(ct.TripID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := svc.CreateBooking(ct)
	if err != nil {
		t.Fatalf("create booking error: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingMissingTrip(t *testing.T) {
	svc, mock, done := newBookingMock(t)
	defer done()

	ct := models.CustomerTrip{
		TripID:        99,
		StartStop:     "Center",
		EndStop:       "Harbor",
		CustomerEmail: "ali@example.com",
	}

	mock.ExpectQuery("SELECT COUNT(.+) FROM customers").WithArgs(ct.CustomerEmail).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT(.+) FROM trips").WithArgs(ct.TripID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.CreateBooking(ct)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
