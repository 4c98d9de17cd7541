package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInvalidAmount         = errors.New("amount is negative or not a valid sum")
	ErrAmountMismatch        = errors.New("payment amount does not match the amount due")
	ErrIllegalTransition     = errors.New("order status transition is not allowed")
	ErrOrderClosed           = errors.New("order is cancelled or refunded")
	ErrDuplicateConfirmation = errors.New("payment confirmation already applied")
	ErrUntrustedCallback     = errors.New("gateway callback failed verification")
	ErrMissingShippingInfo   = errors.New("shipping delivery requires a complete address")
	ErrMissingShowroom       = errors.New("pickup delivery requires a showroom")
	ErrMissingPaymentMethod  = errors.New("payment method is not selected")
	ErrMissingDeliveryDate   = errors.New("delivered status requires an actual delivery date")
	ErrGatewayUnavailable    = errors.New("payment gateway is unavailable")
	ErrPaymentFailed         = errors.New("payment was declined by the gateway")
)
