package models

import "encoding/json"

// Envelope is the wrapper every backend response uses.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}
