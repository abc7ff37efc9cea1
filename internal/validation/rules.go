// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/tokenvault/tokenvault/internal/errors"
)

var (
	// providerRegex matches lowercase provider slugs like "google" or "azure-ad".
	providerRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]{1,63}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// ProviderSlug validates OAuth provider identifiers: lowercase alphanumeric
// with hyphens/underscores, 2-64 characters, starting with a letter.
var ProviderSlug = validation.NewStringRuleWithError(
	func(s string) bool { return providerRegex.MatchString(s) },
	validation.NewError(
		"validation_provider_slug",
		"must be a lowercase provider slug (letters, digits, '-', '_')",
	),
)
