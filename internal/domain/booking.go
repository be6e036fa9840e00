package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses that occupy a vehicle for availability
// purposes. A cancelled booking frees its date range.
var ActiveStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusCompleted}

type Booking struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customer_id"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	CustomerPhone  string        `json:"customer_phone"`
	VehicleID      int           `json:"car_id"`
	VehicleName    string        `json:"car_name"`
	PickupLocation string        `json:"pickup_location"`
	PickupDate     time.Time     `json:"pickup_date"`
	ReturnDate     time.Time     `json:"return_date"`
	TotalPrice     float64       `json:"total_price"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

type CreateBookingInput struct {
	VehicleID      int
	PickupLocation string
	PickupDate     time.Time
	ReturnDate     time.Time
	Email          string
	Phone          string
}
