package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/utils"
)

type TripService struct {
	TripRepo      repositories.TripRepository
	BusRepo       repositories.BusRepository
	UserRepo      repositories.UserRepository
	StopRepo      repositories.StopRepository
	ItineraryRepo repositories.ItineraryRepository
	DB            *sql.DB
	RequestID     string
}

func (s TripService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TripService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s TripService) buses() repositories.BusRepository {
	if s.BusRepo.DB != nil {
		return s.BusRepo
	}
	return repositories.BusRepository{DB: s.db()}
}

func (s TripService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s TripService) stops() repositories.StopRepository {
	if s.StopRepo.DB != nil {
		return s.StopRepo
	}
	return repositories.StopRepository{DB: s.db()}
}

func (s TripService) itineraries() repositories.ItineraryRepository {
	if s.ItineraryRepo.DB != nil {
		return s.ItineraryRepo
	}
	return repositories.ItineraryRepository{DB: s.db()}
}

// TripDetail is one trip with its ordered stops.
type TripDetail struct {
	models.TripView
	Stops []models.TripStop `json:"stops"`
}

// CreateTrip validates referential integrity before inserting: the bus must
// exist and, when given, so must the driver.
func (s TripService) CreateTrip(t models.Trip) error {
	t.DateTime = strings.TrimSpace(t.DateTime)
	t.BusLicensePlate = strings.TrimSpace(t.BusLicensePlate)

	switch {
	case t.TripID <= 0:
		return domain.ValidationError{Field: "trip_id", Msg: "must be a positive id"}
	case t.DateTime == "":
		return domain.ValidationError{Field: "date_time", Msg: "must not be empty"}
	case t.CurrentCapacity < 0:
		return domain.ValidationError{Field: "current_capacity", Msg: "must not be negative"}
	case t.BusLicensePlate == "":
		return domain.ValidationError{Field: "bus_license_plate", Msg: "must not be empty"}
	}

	if _, err := s.buses().GetByPlate(t.BusLicensePlate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "Bus"}
		}
		return domain.InternalError{Msg: "failed to look up bus", Err: err}
	}

	if t.DriverEmail != nil && strings.TrimSpace(*t.DriverEmail) != "" {
		ok, err := s.users().DriverExists(strings.TrimSpace(*t.DriverEmail))
		if err != nil {
			return domain.InternalError{Msg: "failed to look up driver", Err: err}
		}
		if !ok {
			return domain.NotFoundError{Resource: "Driver"}
		}
	}

	exists, err := s.trips().Exists(t.TripID)
	if err != nil {
		return domain.InternalError{Msg: "failed to look up trip", Err: err}
	}
	if exists {
		return domain.ConflictError{Resource: "Trip", Msg: "trip id already in use"}
	}

	if err := s.trips().Create(t); err != nil {
		return domain.InternalError{Msg: "failed to create trip", Err: err}
	}

	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("trip_id=%d bus=%s", t.TripID, t.BusLicensePlate))
	return nil
}

// TripWithStops returns one trip enriched with its ordered itinerary.
// Itinerary entries whose stop was deleted are omitted, never an error.
func (s TripService) TripWithStops(tripID int) (TripDetail, error) {
	var detail TripDetail

	view, err := s.trips().GetView(tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return detail, domain.NotFoundError{Resource: "Trip"}
		}
		return detail, domain.InternalError{Msg: "failed to load trip", Err: err}
	}

	it, err := s.itineraries().Load(tripID)
	if err != nil {
		return detail, domain.InternalError{Msg: "failed to load itinerary", Err: err}
	}

	detail.TripView = view
	detail.Stops = it.StopsInOrder()
	return detail, nil
}

// AttachStops rewrites a trip's itinerary. Orders must be unique within the
// trip and every stop must exist; the replacement is atomic.
func (s TripService) AttachStops(tripID int, stops []models.ItineraryInput) error {
	if tripID <= 0 {
		return domain.ValidationError{Field: "trip_id", Msg: "must be a positive id"}
	}
	if len(stops) == 0 {
		return domain.ValidationError{Field: "stops", Msg: "must not be empty"}
	}

	exists, err := s.trips().Exists(tripID)
	if err != nil {
		return domain.InternalError{Msg: "failed to look up trip", Err: err}
	}
	if !exists {
		return domain.NotFoundError{Resource: "Trip"}
	}

	seenOrder := map[int]bool{}
	seenName := map[string]bool{}
	for i := range stops {
		stops[i].Name = utils.NormalizeStopName(stops[i].Name)
		if stops[i].Name == "" {
			return domain.ValidationError{Field: "stops", Msg: "stop name must not be empty"}
		}
		if seenName[stops[i].Name] {
			return domain.ValidationError{Field: "stops", Msg: "duplicate stop " + stops[i].Name}
		}
		if seenOrder[stops[i].Order] {
			return domain.ValidationError{Field: "stops", Msg: fmt.Sprintf("duplicate stop_order %d", stops[i].Order)}
		}
		seenName[stops[i].Name] = true
		seenOrder[stops[i].Order] = true

		if _, err := s.stops().GetByName(stops[i].Name); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NotFoundError{Resource: "Stop"}
			}
			return domain.InternalError{Msg: "failed to look up stop", Err: err}
		}
	}

	if err := s.trips().ReplaceItinerary(tripID, stops); err != nil {
		return domain.InternalError{Msg: "failed to save itinerary", Err: err}
	}

	utils.LogEvent(s.RequestID, "trip", "attach_stops", fmt.Sprintf("trip_id=%d stops=%d", tripID, len(stops)))
	return nil
}

func (s TripService) DeleteTrip(tripID int) error {
	deleted, err := s.trips().Delete(tripID)
	if err != nil {
		return domain.InternalError{Msg: "failed to delete trip", Err: err}
	}
	if !deleted {
		return domain.NotFoundError{Resource: "Trip"}
	}
	utils.LogEvent(s.RequestID, "trip", "delete", fmt.Sprintf("trip_id=%d", tripID))
	return nil
}
