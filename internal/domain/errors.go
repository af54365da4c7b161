package domain

import "errors"

var (
	// ErrUnknownCommand indicates the command name is not in the dispatch table.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownSubAction indicates a discriminator parameter matched no known case.
	ErrUnknownSubAction = errors.New("unknown sub-action")

	// ErrMissingParameter indicates a required parameter was absent or blank.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrUpstream indicates the completion call failed (network, auth, quota, empty result).
	ErrUpstream = errors.New("upstream completion failed")

	// ErrDelivery indicates a reply or follow-up could not be sent.
	ErrDelivery = errors.New("delivery failed")

	// ErrRegistration indicates command registration with the platform failed.
	ErrRegistration = errors.New("command registration failed")

	// ErrInvalidLimit indicates a chunk limit the chosen unit cannot satisfy.
	ErrInvalidLimit = errors.New("invalid chunk limit")
)

// IsValidationError reports whether err came from prompt validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnknownSubAction) ||
		errors.Is(err, ErrMissingParameter)
}
