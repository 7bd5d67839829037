package core

import "errors"

// Authentication errors
var (
	ErrAccountExists      = errors.New("account already exists")      // 409 Conflict
	ErrAccountNotFound    = errors.New("account not found")           // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid email or password")   // 401 Unauthorized
)

// Token errors
var (
	ErrMissingAuthHeader = errors.New("missing authorization header")                            // 401
	ErrInvalidAuthHeader = errors.New("invalid authorization format, expected 'Bearer <token>'") // 401
	ErrTokenMalformed    = errors.New("malformed token")                                         // 401
	ErrTokenSignature    = errors.New("invalid token signature")                                 // 401
	ErrTokenExpired      = errors.New("token expired")                                           // 401
)

// Validation errors (client input)
var (
	ErrEmailRequired    = errors.New("email is required")     // 400
	ErrInvalidEmail     = errors.New("invalid email format")  // 400
	ErrPasswordRequired = errors.New("password is required")  // 400
	ErrPasswordTooShort = errors.New("password is too short") // 400
	ErrNameRequired     = errors.New("name is required")      // 400
	ErrDeckRequired     = errors.New("deck id is required")   // 400
	ErrDeckNotEmpty     = errors.New("deck still has cards")  // 400
)

// Lookup errors. Not-owned rows report the same error as missing rows
// so one account can never probe for another account's ids.
var (
	ErrDeckNotFound = errors.New("deck not found") // 404
	ErrCardNotFound = errors.New("card not found") // 404
)

// Config errors (server-side configuration)
var (
	ErrSecretRequired = errors.New("signing secret is required") // fatal at startup
	ErrSecretTooShort = errors.New("signing secret too short")   // fatal at startup
	ErrDSNRequired    = errors.New("database url is required")   // fatal at startup
)
