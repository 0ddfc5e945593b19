package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTicketNotFound indicates that ticket was not found
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrProjectNotFound indicates that project was not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrBanNotFound indicates that IP is not present in the ban registry
	ErrBanNotFound = errors.New("ban not found")
)
