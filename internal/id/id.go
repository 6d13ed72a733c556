package id

import "github.com/google/uuid"

// New returns a fresh random ID for a transaction or recurring rule.
func New() string {
	return uuid.NewString()
}
