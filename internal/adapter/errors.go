package adapter

import "errors"

var (
	// ErrEmptyAddress is returned when the validator base URL is blank.
	ErrEmptyAddress = errors.New("empty address")

	// ErrAddressWithoutHost is returned when the validator base URL does
	// not carry both a scheme and a host.
	ErrAddressWithoutHost = errors.New("address must include host and scheme")
)
