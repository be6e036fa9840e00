package domain

type Vehicle struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Seats        int     `json:"seats"`
	Luggage      int     `json:"luggage"`
	Transmission string  `json:"transmission"`
	DailyPrice   float64 `json:"price"`
	Available    bool    `json:"available"`
}
