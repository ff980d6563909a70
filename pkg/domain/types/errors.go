package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrInvalidSignature = goerr.New("invalid signature")
	ErrMalformedPayload = goerr.New("malformed payload")
	ErrChannelNotFound  = goerr.New("channel not found")
	ErrDeliveryFailed   = goerr.New("delivery failed")
)
