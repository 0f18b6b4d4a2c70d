package dto

// RegisterRequest describes the applicant payload accepted by the register endpoint.
type RegisterRequest struct {
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	DateOfBirth    string   `json:"dob"`
	MembershipType string   `json:"membershipType"`
	Skills         string   `json:"skills"`
	Interests      []string `json:"interests"`
}

// RegisterResponse reports the outcome of a registration attempt.
type RegisterResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	MemberID string `json:"memberId,omitempty"`
}
