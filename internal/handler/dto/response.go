package dto

import (
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
)

type BookingResponse struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customer_id"`
	CustomerName   string  `json:"customer_name"`
	CustomerEmail  string  `json:"customer_email"`
	CustomerPhone  string  `json:"customer_phone"`
	CarID          int     `json:"car_id"`
	CarName        string  `json:"car_name"`
	PickupLocation string  `json:"pickup_location"`
	PickupDate     string  `json:"pickup_date"`
	ReturnDate     string  `json:"return_date"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

type VehicleResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Seats        int     `json:"seats"`
	Luggage      int     `json:"luggage"`
	Transmission string  `json:"transmission"`
	Price        float64 `json:"price"`
	Available    bool    `json:"available"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		CarID:          b.VehicleID,
		CarName:        b.VehicleName,
		PickupLocation: b.PickupLocation,
		PickupDate:     b.PickupDate.Format(time.RFC3339),
		ReturnDate:     b.ReturnDate.Format(time.RFC3339),
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		Type:         v.Type,
		Seats:        v.Seats,
		Luggage:      v.Luggage,
		Transmission: v.Transmission,
		Price:        v.DailyPrice,
		Available:    v.Available,
	}
}
