package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

// UserRepository covers the users table plus role resolution across the
// specialization tables (table-per-subtype).
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
        SELECT email, name, sname, password_hash, phone
        FROM users
        WHERE email = ?
    `, email).Scan(&u.Email, &u.Name, &u.Sname, &u.PasswordHash, &u.Phone)
	return u, err
}

func (r UserRepository) Exists(email string) (bool, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r UserRepository) Create(u models.User) error {
	_, err := r.DB.Exec(`
        INSERT INTO users (email, name, sname, password_hash, phone)
        VALUES (?, ?, ?, ?, ?)
    `, u.Email, u.Name, u.Sname, u.PasswordHash, u.Phone)
	return err
}

// CreateWith inserts a user through the given querier (used inside the
// customer-creation transaction).
func (r UserRepository) CreateWith(q Querier, u models.User) error {
	_, err := q.Exec(`
        INSERT INTO users (email, name, sname, password_hash, phone)
        VALUES (?, ?, ?, ?, ?)
    `, u.Email, u.Name, u.Sname, u.PasswordHash, u.Phone)
	return err
}

// UpdateProfile writes the mutable user fields.
func (r UserRepository) UpdateProfile(email, name, sname, phone string) error {
	_, err := r.DB.Exec(`
        UPDATE users SET name = ?, sname = ?, phone = ? WHERE email = ?
    `, name, sname, phone, email)
	return err
}

func (r UserRepository) DriverExists(email string) (bool, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM drivers WHERE email = ?`, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// roleChecks is probed in precedence order: staff roles win over customer
// so accounts holding both route to the staff UI on login.
var roleChecks = []struct {
	table string
	role  string
}{
	{"admins", models.RoleAdmin},
	{"supports", models.RoleSupport},
	{"drivers", models.RoleDriver},
	{"customers", models.RoleCustomer},
	{"employees", models.RoleEmployee},
}

// RoleOf resolves the login role by membership across specialization tables.
// A user with no specialization row resolves to "user".
func (r UserRepository) RoleOf(email string) (string, error) {
	for _, c := range roleChecks {
		var one int
		err := r.DB.QueryRow(`SELECT 1 FROM `+c.table+` WHERE email = ? LIMIT 1`, email).Scan(&one)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return "", err
		}
		return c.role, nil
	}
	return "user", nil
}
