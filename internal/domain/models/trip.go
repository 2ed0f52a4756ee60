package models

type Bus struct {
	LicensePlate string `json:"license_plate"`
	Model        string `json:"model"`
	Capacity     int    `json:"capacity"`
}

// Trip row. DateTime is stored as free-form text in the schema.
type Trip struct {
	TripID          int     `json:"trip_id"`
	DateTime        string  `json:"date_time"`
	CurrentCapacity int     `json:"current_capacity"`
	BusLicensePlate string  `json:"bus_license_plate"`
	DriverEmail     *string `json:"driver_email,omitempty"`
}

// TripView enriches a trip with bus model and driver identity for listings.
type TripView struct {
	TripID          int        `json:"trip_id"`
	DateTime        string     `json:"date_time"`
	CurrentCapacity int        `json:"current_capacity"`
	BusLicensePlate string     `json:"bus_license_plate"`
	BusModel        *string    `json:"bus_model"`
	Driver          DriverInfo `json:"driver"`
}

// TripStop is one entry of a trip's ordered itinerary as exposed by the API.
type TripStop struct {
	Name      string  `json:"name"`
	Order     int     `json:"order"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// ItineraryInput is one (stop, order) pair when attaching stops to a trip.
type ItineraryInput struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}
