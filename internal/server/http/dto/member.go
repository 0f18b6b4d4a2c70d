package dto

import "time"

// MemberPayload is the wire representation of a stored member.
type MemberPayload struct {
	MemberID         string    `json:"memberId"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	DateOfBirth      string    `json:"dob"`
	MembershipType   string    `json:"membershipType"`
	Skills           string    `json:"skills,omitempty"`
	Interests        []string  `json:"interests"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// MemberResponse wraps a member profile lookup result.
type MemberResponse struct {
	Success bool          `json:"success"`
	Member  MemberPayload `json:"member"`
}

// ErrorResponse carries a failure message for any endpoint. Error holds the
// underlying cause and is only populated for internal failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
