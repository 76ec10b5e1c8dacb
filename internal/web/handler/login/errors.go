package login

import "errors"

var (
	// ErrInvalidFormData is logged when the submitted login form cannot be parsed
	// or fails validation.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is logged when the email and password do not match
	// an account.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Messages shown on the login page. They never tell which field was wrong.
const (
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgInvalidForm        = "Please enter your email address and password."
	MsgInternalError      = "Something went wrong. Please try again later."
)
