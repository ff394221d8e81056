package models

import "time"

// Product represents a structured product built on the platform.
type Product struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"` // note, certificate, warrant
	Underlying string         `json:"underlying"`
	Currency   string         `json:"currency"`
	Notional   float64        `json:"notional"`
	Price      float64        `json:"price,omitempty"` // last backend pricing
	Status     string         `json:"status"`          // draft, priced, issued
	Version    int            `json:"version"`
	Maturity   string         `json:"maturity,omitempty"` // YYYY-MM-DD
	Terms      map[string]any `json:"terms,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ProductInput is the request payload for building a structured product.
type ProductInput struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Underlying string         `json:"underlying"`
	Currency   string         `json:"currency,omitempty"`
	Notional   float64        `json:"notional"`
	Maturity   string         `json:"maturity,omitempty"`
	Terms      map[string]any `json:"terms,omitempty"`
}

// ProductPricing is the backend's pricing result for a product.
type ProductPricing struct {
	ProductID string             `json:"product_id"`
	Price     float64            `json:"price"`
	Model     string             `json:"model,omitempty"`
	PricedAt  time.Time          `json:"priced_at"`
	Greeks    map[string]float64 `json:"greeks,omitempty"`
}

// ProductVersion is a historical version of a product's terms.
type ProductVersion struct {
	Version   int            `json:"version"`
	Terms     map[string]any `json:"terms,omitempty"`
	Comment   string         `json:"comment,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
