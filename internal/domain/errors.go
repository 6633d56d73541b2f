package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingCredential is returned when no bearer token was presented.
	ErrMissingCredential = errors.New("no token provided")
	// ErrInvalidOrExpiredCredential is returned for bad signatures, expired or revoked tokens.
	ErrInvalidOrExpiredCredential = errors.New("invalid or expired token")
	ErrInquiryNotFound            = errors.New("inquiry not found")
	ErrSubmissionFailed           = errors.New("submission failed")
)
