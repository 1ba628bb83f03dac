package weather

import "errors"

var (
	// ErrInvalidInput means the caller asked for something that does not exist,
	// e.g. a city the provider does not know.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable means the upstream provider could not serve the request.
	ErrUnavailable = errors.New("weather provider unavailable")

	// ErrContractViolation means the provider answered with a payload that does
	// not match its documented schema. It is reported as unavailable.
	ErrContractViolation error = contractViolation{}
)

type contractViolation struct{}

func (contractViolation) Error() string { return "provider contract violation" }

func (contractViolation) Is(target error) bool { return target == ErrUnavailable }
