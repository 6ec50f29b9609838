package apperrors

import "errors"

// Closed set of application errors. Every failure that reaches a handler is
// classified into one of these sentinels before a response is written;
// anything unmatched falls through to a 500.

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing, invalid or revoked credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrForbidden indicates the requester is authenticated but is not the owner
// of the entity being mutated.
var ErrForbidden = errors.New("forbidden")
