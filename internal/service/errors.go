package service

import "errors"

var (
	// ErrLoginOnServer indicates that the authentication call was rejected
	// by the server or could not be delivered.
	ErrLoginOnServer = errors.New("error logging in on server")
	// ErrEmptyQuestion indicates that an empty or whitespace-only question
	// was submitted.
	ErrEmptyQuestion = errors.New("question must not be empty")
)
