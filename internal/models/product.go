package models

import (
	"errors"
)

var ErrMissingProductID = errors.New("product id is required")

// Product is one search result. It is assembled once by the parser and
// read-only afterwards; it lives only as long as the current query's
// result list.
type Product struct {
	Marketplace string  `json:"marketplace"`
	Name        string  `json:"name"`
	Price       int     `json:"price"`
	Rating      float64 `json:"rating"`
	Feedbacks   int     `json:"feedbacks"`
	ImageURL    string  `json:"image_url"`
	ProductURL  string  `json:"product_url"`
	ProductID   string  `json:"product_id"`
}

// NewProduct creates a product skeleton. The id is the only field whose
// absence makes a result unusable, so it is checked here; every other
// field degrades to its zero value when extraction fails.
func NewProduct(marketplace, id string) (*Product, error) {
	if id == "" {
		return nil, ErrMissingProductID
	}
	return &Product{
		Marketplace: marketplace,
		ProductID:   id,
	}, nil
}
