package models

// CustomerTrip is one booking ledger row. Cost and RefundedCredit stay at
// zero until the first settlement pass writes them.
type CustomerTrip struct {
	CustomerTripID int64   `json:"customer_trip_id"`
	TripID         int     `json:"trip_id"`
	StartStop      string  `json:"start_position"`
	EndStop        string  `json:"end_position"`
	CustomerEmail  string  `json:"customer_email"`
	Cost           float64 `json:"cost"`
	RefundedCredit float64 `json:"refunded_credit"`
}

// CustomerTripView is the settled, enriched booking returned to the client.
// Start/end fall back to "Unknown" when the referenced stop no longer exists.
type CustomerTripView struct {
	TripID         int     `json:"trip_id"`
	DateTime       string  `json:"date_time"`
	Cost           float64 `json:"cost"`
	RefundedCredit float64 `json:"refunded_credit"`
	StartPosition  string  `json:"start_position"`
	EndPosition    string  `json:"end_position"`
}
