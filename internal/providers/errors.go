package providers

import "errors"

// ErrProviderUnavailable is returned when no roster source is configured.
var ErrProviderUnavailable = errors.New("roster provider unavailable")
