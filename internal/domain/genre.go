package domain

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
