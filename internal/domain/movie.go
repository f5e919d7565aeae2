package domain

// GenreSnapshot is the denormalized genre embedded in a movie. It is copied
// from the genre at write time, not joined on read.
type GenreSnapshot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Movie struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Genre           GenreSnapshot `json:"genre"`
	NumberInStock   int32         `json:"number_in_stock"`
	DailyRentalRate float64       `json:"daily_rental_rate"`
}
