package models

// Role values resolved from the specialization tables.
const (
	RoleAdmin    = "admin"
	RoleSupport  = "support"
	RoleDriver   = "driver"
	RoleCustomer = "customer"
	RoleEmployee = "employee"
)

// User is the base identity row; every role table shares its email as PK.
type User struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Sname        string `json:"sname"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
}

// Customer row (customers table). Balance is a DECIMAL(10,2).
type Customer struct {
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// CustomerProfile is the flattened customer+user payload the API returns.
type CustomerProfile struct {
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
	Name    string  `json:"name"`
	Sname   string  `json:"sname"`
	Phone   string  `json:"phone"`
}

type Employee struct {
	Email      string `json:"email"`
	Department string `json:"department"`
}

type Driver struct {
	Email         string `json:"email"`
	DriverLicense string `json:"driver_license"`
}

// DriverInfo is the driver payload embedded in trip responses.
type DriverInfo struct {
	Email         *string `json:"email"`
	DriverLicense *string `json:"driver_license"`
	Name          *string `json:"name"`
}
