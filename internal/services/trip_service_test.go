package services

import (
	"testing"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTripMock(t *testing.T) (TripService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := TripService{DB: db}
	return svc, mock, func() { db.Close() }
}

func TestCreateTripMissingBus(t *testing.T) {
	svc, mock, done := newTripMock(t)
	defer done()

	mock.ExpectQuery("FROM buses").WithArgs("GHOST-01").
		WillReturnRows(sqlmock.NewRows([]string{"license_plate", "model", "capacity"}))

	err := svc.CreateTrip(models.Trip{
		TripID:          1,
		DateTime:        "2025-05-01 10:00:00",
		CurrentCapacity: 30,
		BusLicensePlate: "GHOST-01",
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found for missing bus, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTripDuplicateID(t *testing.T) {
	svc, mock, done := newTripMock(t)
	defer done()

	mock.ExpectQuery("FROM buses").WithArgs("GZ-100").
		WillReturnRows(sqlmock.NewRows([]string{"license_plate", "model", "capacity"}).
			AddRow("GZ-100", "Sprinter", 30))
	mock.ExpectQuery("SELECT COUNT(.+) FROM trips").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.CreateTrip(models.Trip{
		TripID:          1,
		DateTime:        "2025-05-01 10:00:00",
		CurrentCapacity: 30,
		BusLicensePlate: "GZ-100",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate trip id, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTripValidation(t *testing.T) {
	svc, _, done := newTripMock(t)
	defer done()

	cases := []struct {
		name string
		trip models.Trip
	}{
		{"zero id", models.Trip{DateTime: "2025-05-01", CurrentCapacity: 10, BusLicensePlate: "GZ-100"}},
		{"blank date", models.Trip{TripID: 1, CurrentCapacity: 10, BusLicensePlate: "GZ-100"}},
		{"negative capacity", models.Trip{TripID: 1, DateTime: "2025-05-01", CurrentCapacity: -1, BusLicensePlate: "GZ-100"}},
		{"blank plate", models.Trip{TripID: 1, DateTime: "2025-05-01", CurrentCapacity: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.CreateTrip(tc.trip); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAttachStopsDuplicateOrder(t *testing.T) {
	svc, mock, done := newTripMock(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT(.+) FROM trips").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("FROM stops").WithArgs("Center").
		WillReturnRows(sqlmock.NewRows([]string{"name", "longitude", "latitude"}).
			AddRow("Center", 33.02, 35.20))

	err := svc.AttachStops(1, []models.ItineraryInput{
		{Name: "Center", Order: 1},
		{Name: "Mall", Order: 1},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate order, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAttachStopsUnknownStop(t *testing.T) {
	svc, mock, done := newTripMock(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT(.+) FROM trips").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("FROM stops").WithArgs("Nowhere").
		WillReturnRows(sqlmock.NewRows([]string{"name", "longitude", "latitude"}))

	err := svc.AttachStops(1, []models.ItineraryInput{{Name: "Nowhere", Order: 1}})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found for unknown stop, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAttachStopsEmptyList(t *testing.T) {
	svc, _, done := newTripMock(t)
	defer done()

	if err := svc.AttachStops(1, nil); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty stop list, got %v", err)
	}
}
