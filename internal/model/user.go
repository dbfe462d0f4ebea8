package model

// User is the authenticated account.
type User struct {
	ID              int64
	Email           string
	Name            string
	GoogleConnected bool
}
