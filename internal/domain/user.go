package domain

import "time"

type User struct {
	Id        UserId
	Email     Email
	PassHash  string
	CreatedAt time.Time
}

// Identity is the verified caller of a single request. It is derived from a
// validated access token and never persisted.
type Identity struct {
	UserId UserId
	Email  Email
}
