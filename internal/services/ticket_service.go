package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a printable e-ticket PDF for one settled booking.
type TicketService struct {
	BookingRepo repositories.BookingRepository
	TripRepo    repositories.TripRepository
	UserRepo    repositories.UserRepository
	DB          *sql.DB
	RequestID   string
	Loader      func(customerTripID int64) (ticketData, error)
}

type ticketData struct {
	CustomerTripID int64
	CustomerEmail  string
	CustomerName   string
	TripID         int
	DateTime       string
	StartStop      string
	EndStop        string
	Cost           float64
	RefundedCredit float64
}

func (s TicketService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TicketService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s TicketService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s TicketService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

// GenerateETicket builds the PDF for a booking owned by customerEmail.
func (s TicketService) GenerateETicket(customerTripID int64, customerEmail string) ([]byte, string, error) {
	data, err := s.loadTicketData(customerTripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NotFoundError{Resource: "Booking"}
		}
		return nil, "", domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if !utils.EmailsEqual(data.CustomerEmail, customerEmail) {
		return nil, "", domain.NotFoundError{Resource: "Booking"}
	}

	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("customer_trip_id=%d", customerTripID))
	return buildETicketPDF(data)
}

func (s TicketService) loadTicketData(customerTripID int64) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(customerTripID)
	}

	var out ticketData
	ct, err := s.bookings().GetByID(customerTripID)
	if err != nil {
		return out, err
	}
	out.CustomerTripID = ct.CustomerTripID
	out.CustomerEmail = ct.CustomerEmail
	out.TripID = ct.TripID
	out.StartStop = ct.StartStop
	out.EndStop = ct.EndStop
	out.Cost = ct.Cost
	out.RefundedCredit = ct.RefundedCredit

	if trip, err := s.trips().GetByID(ct.TripID); err == nil {
		out.DateTime = trip.DateTime
	}
	if user, err := s.users().GetByEmail(ct.CustomerEmail); err == nil {
		out.CustomerName = strings.TrimSpace(user.Name + " " + user.Sname)
	}

	return out, nil
}

func buildETicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "GUZELYURTCEPTE E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(d.CustomerName, d.CustomerEmail)),
		fmt.Sprintf("Email        : %s", safe(d.CustomerEmail, "-")),
		fmt.Sprintf("Trip         : #%d", d.TripID),
		fmt.Sprintf("Departure    : %s", safe(d.DateTime, "-")),
		fmt.Sprintf("From         : %s", safe(d.StartStop, "-")),
		fmt.Sprintf("To           : %s", safe(d.EndStop, "-")),
		fmt.Sprintf("Fare         : %s", utils.FormatMoney(d.Cost)),
		fmt.Sprintf("Refund credit: %s", utils.FormatMoney(d.RefundedCredit)),
		fmt.Sprintf("Ticket code  : TCK-%d-%d", d.TripID, d.CustomerTripID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger. Please show it when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%d.pdf", d.TripID, d.CustomerTripID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
