package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

type StopRepository struct {
	DB *sql.DB
}

func (r StopRepository) List() ([]models.Stop, error) {
	rows, err := r.DB.Query(`SELECT name, longitude, latitude FROM stops ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Stop{}
	for rows.Next() {
		var s models.Stop
		if err := rows.Scan(&s.Name, &s.Longitude, &s.Latitude); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r StopRepository) GetByName(name string) (models.Stop, error) {
	var s models.Stop
	err := r.DB.QueryRow(`
        SELECT name, longitude, latitude FROM stops WHERE name = ?
    `, name).Scan(&s.Name, &s.Longitude, &s.Latitude)
	return s, err
}

func (r StopRepository) Create(s models.Stop) error {
	_, err := r.DB.Exec(`
        INSERT INTO stops (name, longitude, latitude) VALUES (?, ?, ?)
    `, s.Name, s.Longitude, s.Latitude)
	return err
}

// UpdateCoordinates moves a stop; the name is immutable identity.
func (r StopRepository) UpdateCoordinates(name string, longitude, latitude float64) (bool, error) {
	res, err := r.DB.Exec(`
        UPDATE stops SET longitude = ?, latitude = ? WHERE name = ?
    `, longitude, latitude, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r StopRepository) Delete(name string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM stops WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
