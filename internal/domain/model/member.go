package model

import "time"

// Member represents a registered member of the organization.
type Member struct {
	ID             int64
	MemberID       string
	FullName       string
	Email          string
	Phone          string
	Address        string
	DateOfBirth    time.Time
	MembershipType string
	Skills         *string
	Interests      []string
	RegisteredAt   time.Time
}
