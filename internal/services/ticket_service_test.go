package services

import (
	"strings"
	"testing"

	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain"
)

func ticketLoader(id int64) (ticketData, error) {
	return ticketData{
		CustomerTripID: id,
		CustomerEmail:  "ali@example.com",
		CustomerName:   "Ali Veli",
		TripID:         10,
		DateTime:       "2025-05-01 10:00:00",
		StartStop:      "Center",
		EndStop:        "Harbor",
		Cost:           13.00,
		RefundedCredit: 2.00,
	}, nil
}

func TestGenerateETicket(t *testing.T) {
	svc := TicketService{Loader: ticketLoader}

	pdf, filename, err := svc.GenerateETicket(1, "ali@example.com")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if filename != "ETICKET_10_1.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestGenerateETicketCaseInsensitiveOwner(t *testing.T) {
	svc := TicketService{Loader: ticketLoader}

	if _, _, err := svc.GenerateETicket(1, "ALI@Example.COM"); err != nil {
		t.Fatalf("case-insensitive owner rejected: %v", err)
	}
}

func TestGenerateETicketWrongOwner(t *testing.T) {
	svc := TicketService{Loader: ticketLoader}

	_, _, err := svc.GenerateETicket(1, "other@example.com")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found for foreign booking, got %v", err)
	}
}

func TestSafeFallback(t *testing.T) {
	if got := safe("  ", "fallback"); got != "fallback" {
		t.Fatalf("safe blank = %q", got)
	}
	if got := safe("value", "fallback"); got != "value" {
		t.Fatalf("safe value = %q", got)
	}
	if got := safe(strings.Repeat("x", 3), "fallback"); got != "xxx" {
		t.Fatalf("safe = %q", got)
	}
}
