package generation

import "errors"

var (
	// ErrAPIKeyRequired is returned when the provider client is created
	// without an API key.
	ErrAPIKeyRequired = errors.New("openai api key is required")

	// ErrInvalidRequest is returned when a generation request fails
	// validation.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrGenerationFailed is returned when the provider call fails or
	// produces no content.
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrMissingUserID is returned when a generation or history call has
	// no user to attribute.
	ErrMissingUserID = errors.New("user id is required")
)
