package domain

import "time"

// CustomerSnapshot and MovieSnapshot are captured from the live records at
// rental creation time. All fee calculations use these snapshots, not the
// live customer/movie rows, so later edits to either never alter rental
// history.
type CustomerSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type MovieSnapshot struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"daily_rental_rate"`
}

type Rental struct {
	ID           string           `json:"id"`
	Customer     CustomerSnapshot `json:"customer"`
	Movie        MovieSnapshot    `json:"movie"`
	DateOut      time.Time        `json:"date_out"`
	DateReturned *time.Time       `json:"date_returned,omitempty"`
	RentalFee    *float64         `json:"rental_fee,omitempty"`
}

// IsOpen reports whether the rental has not been returned yet.
func (r *Rental) IsOpen() bool {
	return r.DateReturned == nil
}
