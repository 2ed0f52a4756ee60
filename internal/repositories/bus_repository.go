package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) List() ([]models.Bus, error) {
	rows, err := r.DB.Query(`SELECT license_plate, model, capacity FROM buses ORDER BY license_plate ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Bus{}
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.LicensePlate, &b.Model, &b.Capacity); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BusRepository) GetByPlate(plate string) (models.Bus, error) {
	var b models.Bus
	err := r.DB.QueryRow(`
        SELECT license_plate, model, capacity FROM buses WHERE license_plate = ?
    `, plate).Scan(&b.LicensePlate, &b.Model, &b.Capacity)
	return b, err
}

func (r BusRepository) Create(b models.Bus) error {
	_, err := r.DB.Exec(`
        INSERT INTO buses (license_plate, model, capacity) VALUES (?, ?, ?)
    `, b.LicensePlate, b.Model, b.Capacity)
	return err
}

func (r BusRepository) Update(b models.Bus) (bool, error) {
	res, err := r.DB.Exec(`
        UPDATE buses SET model = ?, capacity = ? WHERE license_plate = ?
    `, b.Model, b.Capacity, b.LicensePlate)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r BusRepository) Delete(plate string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM buses WHERE license_plate = ?`, plate)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
