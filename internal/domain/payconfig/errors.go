package payconfig

import "errors"

// ErrInvalidConfiguration marks a misconfigured deployment (bad divisor,
// negative multiplier, malformed night window). It aborts the computation
// that hit it; defaults are never substituted silently.
var ErrInvalidConfiguration = errors.New("invalid payroll configuration")
