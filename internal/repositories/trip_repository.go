package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

// List returns all trips enriched with bus model and driver identity.
func (r TripRepository) List() ([]models.TripView, error) {
	rows, err := r.DB.Query(`
        SELECT t.trip_id, t.date_time, t.current_capacity, t.bus_license_plate,
               b.model, d.email, d.driver_license, u.name
        FROM trips t
        LEFT JOIN buses b ON b.license_plate = t.bus_license_plate
        LEFT JOIN drivers d ON d.email = t.driver_email
        LEFT JOIN users u ON u.email = d.email
        ORDER BY t.trip_id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.TripView{}
	for rows.Next() {
		var (
			v        models.TripView
			busModel sql.NullString
			dEmail   sql.NullString
			dLicense sql.NullString
			dName    sql.NullString
		)
		if err := rows.Scan(&v.TripID, &v.DateTime, &v.CurrentCapacity, &v.BusLicensePlate,
			&busModel, &dEmail, &dLicense, &dName); err != nil {
			return nil, err
		}
		if busModel.Valid {
			v.BusModel = &busModel.String
		}
		if dEmail.Valid {
			v.Driver.Email = &dEmail.String
		}
		if dLicense.Valid {
			v.Driver.DriverLicense = &dLicense.String
		}
		if dName.Valid {
			v.Driver.Name = &dName.String
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r TripRepository) GetByID(tripID int) (models.Trip, error) {
	var (
		t           models.Trip
		driverEmail sql.NullString
	)
	err := r.DB.QueryRow(`
        SELECT trip_id, date_time, current_capacity, bus_license_plate, driver_email
        FROM trips
        WHERE trip_id = ?
    `, tripID).Scan(&t.TripID, &t.DateTime, &t.CurrentCapacity, &t.BusLicensePlate, &driverEmail)
	if driverEmail.Valid {
		t.DriverEmail = &driverEmail.String
	}
	return t, err
}

// GetView loads one trip with its bus and driver identity.
func (r TripRepository) GetView(tripID int) (models.TripView, error) {
	var (
		v        models.TripView
		busModel sql.NullString
		dEmail   sql.NullString
		dLicense sql.NullString
		dName    sql.NullString
	)
	err := r.DB.QueryRow(`
        SELECT t.trip_id, t.date_time, t.current_capacity, t.bus_license_plate,
               b.model, d.email, d.driver_license, u.name
        FROM trips t
        LEFT JOIN buses b ON b.license_plate = t.bus_license_plate
        LEFT JOIN drivers d ON d.email = t.driver_email
        LEFT JOIN users u ON u.email = d.email
        WHERE t.trip_id = ?
    `, tripID).Scan(&v.TripID, &v.DateTime, &v.CurrentCapacity, &v.BusLicensePlate,
		&busModel, &dEmail, &dLicense, &dName)
	if err != nil {
		return v, err
	}
	if busModel.Valid {
		v.BusModel = &busModel.String
	}
	if dEmail.Valid {
		v.Driver.Email = &dEmail.String
	}
	if dLicense.Valid {
		v.Driver.DriverLicense = &dLicense.String
	}
	if dName.Valid {
		v.Driver.Name = &dName.String
	}
	return v, nil
}

func (r TripRepository) Exists(tripID int) (bool, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM trips WHERE trip_id = ?`, tripID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r TripRepository) Create(t models.Trip) error {
	var driver any
	if t.DriverEmail != nil && *t.DriverEmail != "" {
		driver = *t.DriverEmail
	}
	_, err := r.DB.Exec(`
        INSERT INTO trips (trip_id, date_time, current_capacity, bus_license_plate, driver_email)
        VALUES (?, ?, ?, ?, ?)
    `, t.TripID, t.DateTime, t.CurrentCapacity, t.BusLicensePlate, driver)
	return err
}

// Delete removes a trip and its includes rows in one transaction; the
// itinerary has no lifecycle of its own.
func (r TripRepository) Delete(tripID int) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}

	if _, err := tx.Exec(`DELETE FROM includes WHERE trip_id = ?`, tripID); err != nil {
		_ = tx.Rollback()
		return false, err
	}
	res, err := tx.Exec(`DELETE FROM trips WHERE trip_id = ?`, tripID)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ReplaceItinerary rewrites the trip's includes rows atomically.
func (r TripRepository) ReplaceItinerary(tripID int, stops []models.ItineraryInput) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM includes WHERE trip_id = ?`, tripID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, s := range stops {
		if _, err := tx.Exec(`
            INSERT INTO includes (trip_id, stop_name, stop_order) VALUES (?, ?, ?)
        `, tripID, s.Name, s.Order); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
