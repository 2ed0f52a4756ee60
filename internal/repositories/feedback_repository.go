package repositories

import (
	"database/sql"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
)

type FeedbackRepository struct {
	DB *sql.DB
}

// List joins each feedback with its customer and (when assigned) support
// staff identity.
func (r FeedbackRepository) List() ([]models.FeedbackView, error) {
	rows, err := r.DB.Query(`
        SELECT f.feedback_id, COALESCE(f.comment, ''), COALESCE(f.response, ''), f.trip_id,
               cu.email, cu.name, cu.sname,
               su.email, su.name, su.sname
        FROM feedback f
        LEFT JOIN users cu ON cu.email = f.customer_email
        LEFT JOIN users su ON su.email = f.support_email
        ORDER BY f.feedback_id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.FeedbackView{}
	for rows.Next() {
		var (
			v      models.FeedbackView
			cEmail sql.NullString
			cName  sql.NullString
			cSname sql.NullString
			sEmail sql.NullString
			sName  sql.NullString
			sSname sql.NullString
		)
		if err := rows.Scan(&v.FeedbackID, &v.Comment, &v.Response, &v.TripID,
			&cEmail, &cName, &cSname, &sEmail, &sName, &sSname); err != nil {
			return nil, err
		}
		if cEmail.Valid {
			v.Customer = &models.FeedbackPerson{Email: cEmail.String, Name: cName.String, Sname: cSname.String}
		}
		if sEmail.Valid {
			v.Support = &models.FeedbackPerson{Email: sEmail.String, Name: sName.String, Sname: sSname.String}
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r FeedbackRepository) Create(f models.Feedback) (int64, error) {
	var support any
	if f.SupportEmail != nil && *f.SupportEmail != "" {
		support = *f.SupportEmail
	}
	res, err := r.DB.Exec(`
        INSERT INTO feedback (comment, response, trip_id, support_email, customer_email)
        VALUES (?, ?, ?, ?, ?)
    `, f.Comment, f.Response, f.TripID, support, f.CustomerEmail)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Respond records a support response; the support assignment only changes
// when a support email is supplied.
func (r FeedbackRepository) Respond(feedbackID int64, response string, supportEmail string) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if supportEmail != "" {
		res, err = r.DB.Exec(`
            UPDATE feedback SET response = ?, support_email = ? WHERE feedback_id = ?
        `, response, supportEmail, feedbackID)
	} else {
		res, err = r.DB.Exec(`
            UPDATE feedback SET response = ? WHERE feedback_id = ?
        `, response, feedbackID)
	}
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
