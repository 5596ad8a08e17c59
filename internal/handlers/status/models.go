// internal/handlers/status/models.go
package status

import "time"

// CreateInput is the POST /api/status request body.
type CreateInput struct {
	ClientName string `json:"client_name"`
}

// Check is a single recorded status check.
type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
