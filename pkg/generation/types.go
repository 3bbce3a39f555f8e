package generation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Content type of the requested copy.
const (
	TypePost        = "post"
	TypeDescription = "description"
	TypeHashtags    = "hashtags"
	TypeHeadline    = "headline"
)

// Tone of voice for the generated text.
const (
	ToneFriendly = "friendly"
	ToneExpert   = "expert"
	ToneSales    = "sales"
)

// Target length of the generated text.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// Request describes one content generation call.
type Request struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=2000"`
	Type   string `json:"type" validate:"required,oneof=post description hashtags headline"`
	Tone   string `json:"tone" validate:"required,oneof=friendly expert sales"`
	Length string `json:"length" validate:"required,oneof=short medium long"`
}

var validate = validator.New()

// Validate checks the request against the supported enums.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// Result is the provider output for a single request.
type Result struct {
	Text       string `json:"result"`
	TokensUsed int    `json:"tokensUsed"`
}
