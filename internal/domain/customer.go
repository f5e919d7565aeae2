package domain

type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"is_gold"`
}
