// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"
)

// UpsertTokenRequest contains the parameters for storing an OAuth token pair.
// Provider and provider user ID are extracted from URL parameters, not the body.
type UpsertTokenRequest struct {
	AccessToken  string     `json:"access_token" binding:"required"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// Validate checks if the upsert token request is valid.
func (r *UpsertTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AccessToken,
			validation.Required,
			validation.Length(1, 8192),
		),
		validation.Field(&r.RefreshToken,
			validation.Length(0, 8192),
		),
	)
}
