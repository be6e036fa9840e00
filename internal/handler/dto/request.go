package dto

// CreateBookingRequest keeps the camelCase field names of the public booking
// API. Presence of required fields is validated by the booking service, not
// by binding tags, so a missing field maps to the ledger's own error.
type CreateBookingRequest struct {
	CarID          int    `json:"carId"`
	PickupLocation string `json:"pickupLocation"`
	PickupDate     string `json:"pickupDate"`
	ReturnDate     string `json:"returnDate"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}
