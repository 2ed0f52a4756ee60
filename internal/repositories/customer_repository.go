package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) List() ([]models.CustomerProfile, error) {
	rows, err := r.DB.Query(`
        SELECT c.email, c.balance, u.name, u.sname, u.phone
        FROM customers c
        JOIN users u ON u.email = c.email
        ORDER BY c.email ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.CustomerProfile{}
	for rows.Next() {
		var p models.CustomerProfile
		if err := rows.Scan(&p.Email, &p.Balance, &p.Name, &p.Sname, &p.Phone); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r CustomerRepository) GetProfile(email string) (models.CustomerProfile, error) {
	var p models.CustomerProfile
	err := r.DB.QueryRow(`
        SELECT c.email, c.balance, u.name, u.sname, u.phone
        FROM customers c
        JOIN users u ON u.email = c.email
        WHERE c.email = ?
    `, email).Scan(&p.Email, &p.Balance, &p.Name, &p.Sname, &p.Phone)
	return p, err
}

func (r CustomerRepository) Exists(email string) (bool, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM customers WHERE email = ?`, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWith inserts the customer specialization row inside the same
// transaction that created the user.
func (r CustomerRepository) CreateWith(q Querier, email string, balance float64) error {
	_, err := q.Exec(`INSERT INTO customers (email, balance) VALUES (?, ?)`, email, balance)
	return err
}

func (r CustomerRepository) UpdateBalance(email string, balance float64) error {
	_, err := r.DB.Exec(`UPDATE customers SET balance = ? WHERE email = ?`, balance, email)
	return err
}
