package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

// Querier is satisfied by both *sql.DB and *sql.Tx so settlement passes can
// run their reads inside the same transaction as their writes.
type Querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

// ItineraryRepository loads the ordered stop sequence of a trip from the
// includes join table.
type ItineraryRepository struct {
	DB *sql.DB
}

type itineraryEntry struct {
	name      string
	order     int
	hasStop   bool
	longitude float64
	latitude  float64
}

// Itinerary is one trip's route loaded in a single query, sorted ascending
// by stop_order. Position lookups resolve against the includes rows alone;
// an entry whose stop row was deleted still has a position but is omitted
// from StopsInOrder.
type Itinerary struct {
	TripID      int
	entries     []itineraryEntry
	orderByName map[string]int
}

// NewItinerary builds an in-memory itinerary from already-resolved stops.
func NewItinerary(tripID int, stops []models.TripStop) Itinerary {
	it := Itinerary{TripID: tripID, orderByName: map[string]int{}}
	for _, s := range stops {
		it.orderByName[s.Name] = s.Order
		it.entries = append(it.entries, itineraryEntry{
			name:      s.Name,
			order:     s.Order,
			hasStop:   true,
			longitude: s.Longitude,
			latitude:  s.Latitude,
		})
	}
	return it
}

func (r ItineraryRepository) Load(tripID int) (Itinerary, error) {
	return r.LoadWith(r.DB, tripID)
}

// LoadWith reads the itinerary through the given querier (DB or open tx).
func (r ItineraryRepository) LoadWith(q Querier, tripID int) (Itinerary, error) {
	it := Itinerary{TripID: tripID, orderByName: map[string]int{}}

	rows, err := q.Query(`
        SELECT i.stop_name, i.stop_order, s.name, s.longitude, s.latitude
        FROM includes i
        LEFT JOIN stops s ON s.name = i.stop_name
        WHERE i.trip_id = ?
        ORDER BY i.stop_order ASC
    `, tripID)
	if err != nil {
		return it, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e        itineraryEntry
			stopName sql.NullString
			lon      sql.NullFloat64
			lat      sql.NullFloat64
		)
		if err := rows.Scan(&e.name, &e.order, &stopName, &lon, &lat); err != nil {
			return it, err
		}
		e.hasStop = stopName.Valid
		e.longitude = lon.Float64
		e.latitude = lat.Float64

		it.orderByName[e.name] = e.order
		it.entries = append(it.entries, e)
	}
	if err := rows.Err(); err != nil {
		return it, err
	}

	return it, nil
}

// PositionOf returns the stop_order of a stop within this trip's itinerary.
// A miss is a normal outcome, not an error; the fare engine falls back on it.
func (it Itinerary) PositionOf(stopName string) (int, bool) {
	order, ok := it.orderByName[stopName]
	return order, ok
}

// StopsInOrder returns the itinerary ascending by stop_order, silently
// omitting entries whose referenced stop no longer exists.
func (it Itinerary) StopsInOrder() []models.TripStop {
	out := make([]models.TripStop, 0, len(it.entries))
	for _, e := range it.entries {
		if !e.hasStop {
			continue
		}
		out = append(out, models.TripStop{
			Name:      e.name,
			Order:     e.order,
			Longitude: e.longitude,
			Latitude:  e.latitude,
		})
	}
	return out
}

// Len reports the number of includes rows loaded, orphans included.
func (it Itinerary) Len() int {
	return len(it.entries)
}
