package entities

type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Service struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
