package email

import "errors"

var (
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrEmptySubject     = errors.New("email subject is empty")
	ErrEmptyBody        = errors.New("email body is empty")
	ErrEmptyEmailID     = errors.New("email id is empty")
)
