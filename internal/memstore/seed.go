package memstore

import (
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
)

// SeedVehicles is the static rental fleet loaded at startup.
func SeedVehicles() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: 1, Name: "Toyota Corolla", Type: "Economy", Seats: 5, Luggage: 2, Transmission: "Automatic", DailyPrice: 45, Available: true},
		{ID: 2, Name: "Honda Civic", Type: "Compact", Seats: 5, Luggage: 2, Transmission: "Automatic", DailyPrice: 48, Available: true},
		{ID: 3, Name: "Ford Explorer", Type: "SUV", Seats: 7, Luggage: 4, Transmission: "Automatic", DailyPrice: 85, Available: true},
		{ID: 4, Name: "Mercedes C-Class", Type: "Luxury", Seats: 5, Luggage: 3, Transmission: "Automatic", DailyPrice: 120, Available: true},
		{ID: 5, Name: "Hyundai Elantra", Type: "Economy", Seats: 5, Luggage: 2, Transmission: "Automatic", DailyPrice: 42, Available: true},
		{ID: 6, Name: "BMW 5 Series", Type: "Luxury", Seats: 5, Luggage: 3, Transmission: "Automatic", DailyPrice: 135, Available: true},
	}
}

// SeedBookings is the demo ledger content.
func SeedBookings() []*domain.Booking {
	return []*domain.Booking{
		{
			ID:             "B12345",
			CustomerID:     "C001",
			CustomerName:   "John Smith",
			CustomerEmail:  "john.smith@example.com",
			CustomerPhone:  "555-123-4567",
			VehicleID:      3,
			VehicleName:    "Ford Explorer",
			PickupLocation: "Seattle Airport",
			PickupDate:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			ReturnDate:     time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
			TotalPrice:     340,
			Status:         domain.BookingStatusConfirmed,
			CreatedAt:      time.Date(2025, 2, 20, 14, 32, 11, 0, time.UTC),
		},
		{
			ID:             "B12346",
			CustomerID:     "C001",
			CustomerName:   "John Smith",
			CustomerEmail:  "john.smith@example.com",
			CustomerPhone:  "555-123-4567",
			VehicleID:      1,
			VehicleName:    "Toyota Corolla",
			PickupLocation: "Downtown Seattle",
			PickupDate:     time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
			ReturnDate:     time.Date(2025, 1, 17, 17, 0, 0, 0, time.UTC),
			TotalPrice:     90,
			Status:         domain.BookingStatusCompleted,
			CreatedAt:      time.Date(2025, 1, 10, 11, 23, 45, 0, time.UTC),
		},
		{
			ID:             "B12347",
			CustomerID:     "C002",
			CustomerName:   "Jane Doe",
			CustomerEmail:  "jane.doe@example.com",
			CustomerPhone:  "555-987-6543",
			VehicleID:      4,
			VehicleName:    "Mercedes C-Class",
			PickupLocation: "Portland Airport",
			PickupDate:     time.Date(2025, 2, 28, 14, 0, 0, 0, time.UTC),
			ReturnDate:     time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC),
			TotalPrice:     360,
			Status:         domain.BookingStatusConfirmed,
			CreatedAt:      time.Date(2025, 2, 15, 9, 12, 33, 0, time.UTC),
		},
	}
}
