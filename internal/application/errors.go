package application

import "errors"

// Failure sentinels for the use cases. Handlers map them to HTTP statuses:
// unauthorized-class errors deliberately share messages where user
// enumeration is a concern (unknown email vs wrong password).
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrAdminRequired      = errors.New("admin privileges required")
	ErrInactiveAdmin      = errors.New("inactive admin cannot perform this operation")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrSelfDemotion       = errors.New("cannot demote self")
	ErrNotAnAdmin         = errors.New("user is not an admin")
	ErrInactiveTarget     = errors.New("inactive user cannot change role")
	ErrAlreadyInactive    = errors.New("user is already inactive")
	ErrAlreadyActive      = errors.New("user is already active")
)
