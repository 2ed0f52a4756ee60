package models

// Stop is a named location; the name is its identity, coordinates may change.
type Stop struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// StopConnection is a directed priced edge between two stops.
// a->b and b->a are independent rows; the price is persisted but not
// consumed by fare settlement.
type StopConnection struct {
	FromStop string  `json:"from_stop"`
	ToStop   string  `json:"to_stop"`
	Price    float64 `json:"price"`
}
