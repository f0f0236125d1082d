package models

type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageUrl    string  `json:"imageUrl,omitempty"`
}

func (i Item) InStock() bool {
	return i.Quantity > 0
}
