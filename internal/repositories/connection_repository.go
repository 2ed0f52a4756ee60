package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

// ConnectionRepository stores directed priced edges between stops. The graph
// is persisted for a future pricing model; fare settlement never reads it.
type ConnectionRepository struct {
	DB *sql.DB
}

func (r ConnectionRepository) List() ([]models.StopConnection, error) {
	rows, err := r.DB.Query(`
        SELECT from_stop, to_stop, price
        FROM stop_connections
        ORDER BY from_stop ASC, to_stop ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.StopConnection{}
	for rows.Next() {
		var c models.StopConnection
		if err := rows.Scan(&c.FromStop, &c.ToStop, &c.Price); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r ConnectionRepository) Get(from, to string) (models.StopConnection, error) {
	var c models.StopConnection
	err := r.DB.QueryRow(`
        SELECT from_stop, to_stop, price
        FROM stop_connections
        WHERE from_stop = ? AND to_stop = ?
    `, from, to).Scan(&c.FromStop, &c.ToStop, &c.Price)
	return c, err
}

// Upsert keeps one row per ordered pair.
func (r ConnectionRepository) Upsert(c models.StopConnection) error {
	_, err := r.DB.Exec(`
        INSERT INTO stop_connections (from_stop, to_stop, price)
        VALUES (?, ?, ?)
        ON DUPLICATE KEY UPDATE price = VALUES(price)
    `, c.FromStop, c.ToStop, c.Price)
	return err
}

func (r ConnectionRepository) Delete(from, to string) (bool, error) {
	res, err := r.DB.Exec(`
        DELETE FROM stop_connections WHERE from_stop = ? AND to_stop = ?
    `, from, to)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
