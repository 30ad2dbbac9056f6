package auth

import "time"

// Strategy issues and verifies admin session tokens.
type Strategy interface {
	IssueToken(adminID int64) (string, error)
	ParseToken(token string) (int64, error)
	TTL() time.Duration
	Name() string
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}
