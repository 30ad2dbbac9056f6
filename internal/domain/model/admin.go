package model

import "time"

// Admin represents a staff account allowed into the back office.
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
}
