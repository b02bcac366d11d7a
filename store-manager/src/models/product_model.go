package models

// Product is a stocked item. Quantity never goes below zero.
type Product struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
