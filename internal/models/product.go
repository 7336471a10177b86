package models

type Product struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Qty     int     `json:"qty"`
	Price   float64 `json:"price"`
	Barcode string  `json:"barcode,omitempty"`
}
