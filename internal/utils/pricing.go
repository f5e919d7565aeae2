package utils

import "time"

const hoursPerDay = 24

// DaysRented counts the whole days elapsed between dateOut and dateReturned,
// rounding down. A return within the first 24 hours counts as zero days,
// matching the historical fee behavior of the store.
func DaysRented(dateOut, dateReturned time.Time) int {
	if dateReturned.Before(dateOut) {
		return 0
	}
	return int(dateReturned.Sub(dateOut).Hours() / hoursPerDay)
}

// RentalFee computes the fee for a closed rental from the movie snapshot's
// daily rate: whole elapsed days times the rate.
func RentalFee(dateOut, dateReturned time.Time, dailyRentalRate float64) float64 {
	return float64(DaysRented(dateOut, dateReturned)) * dailyRentalRate
}
