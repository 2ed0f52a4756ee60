package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestItineraryLoadOrdersAscending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM includes i").WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"stop_name", "stop_order", "name", "longitude", "latitude"}).
			AddRow("Center", 1, "Center", 33.02, 35.20).
			AddRow("Mall", 2, "Mall", 33.03, 35.21).
			AddRow("Harbor", 3, "Harbor", 33.04, 35.22))

	repo := ItineraryRepository{DB: db}
	it, err := repo.Load(5)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	stops := it.StopsInOrder()
	if len(stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(stops))
	}
	for i, want := range []string{"Center", "Mall", "Harbor"} {
		if stops[i].Name != want {
			t.Fatalf("stop %d = %q, want %q", i, stops[i].Name, want)
		}
		if stops[i].Order != i+1 {
			t.Fatalf("stop %d order = %d, want %d", i, stops[i].Order, i+1)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A deleted stop leaves its includes row behind. The entry still resolves a
// position but drops out of the ordered listing.
func TestItineraryOrphanEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM includes i").WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"stop_name", "stop_order", "name", "longitude", "latitude"}).
			AddRow("Center", 1, "Center", 33.02, 35.20).
			AddRow("OldDepot", 2, nil, nil, nil).
			AddRow("Harbor", 3, "Harbor", 33.04, 35.22))

	repo := ItineraryRepository{DB: db}
	it, err := repo.Load(5)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if it.Len() != 3 {
		t.Fatalf("len = %d, want 3 entries including the orphan", it.Len())
	}

	order, ok := it.PositionOf("OldDepot")
	if !ok || order != 2 {
		t.Fatalf("orphan position = (%d, %v), want (2, true)", order, ok)
	}

	stops := it.StopsInOrder()
	if len(stops) != 2 {
		t.Fatalf("got %d listed stops, want the orphan skipped", len(stops))
	}
	if stops[0].Name != "Center" || stops[1].Name != "Harbor" {
		t.Fatalf("listed stops = %q, %q", stops[0].Name, stops[1].Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestItineraryPositionOfMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM includes i").WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"stop_name", "stop_order", "name", "longitude", "latitude"}))

	repo := ItineraryRepository{DB: db}
	it, err := repo.Load(5)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if _, ok := it.PositionOf("Anywhere"); ok {
		t.Fatalf("empty itinerary resolved a position")
	}
	if it.Len() != 0 {
		t.Fatalf("len = %d, want 0", it.Len())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
