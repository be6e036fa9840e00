package domain

import "time"

// RentalDays returns the chargeable number of days for a rental window,
// rounding any partial day up. The return time must be after the pickup time.
func RentalDays(pickup, returnAt time.Time) int {
	d := returnAt.Sub(pickup)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// TotalPrice is dailyPrice multiplied by the rounded-up day count.
func TotalPrice(dailyPrice float64, pickup, returnAt time.Time) float64 {
	return dailyPrice * float64(RentalDays(pickup, returnAt))
}

// Overlaps reports whether two half-open rental windows [aFrom, aTo) and
// [bFrom, bTo) share any time.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}
