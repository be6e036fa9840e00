package domain

// Customer is the authenticated identity attached to a request. Bookings
// denormalize its fields at creation time and never re-join them later.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
