package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrFailedCreateUser = errors.New("failed to create user")
)

// Postgres unique-violation code, used to map duplicate emails.
const pgUniqueViolation = "23505"
