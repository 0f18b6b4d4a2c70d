package model

// RegistrationInput carries applicant data as received from the HTTP boundary.
// Dates travel as strings and are validated by the registration workflow.
type RegistrationInput struct {
	FullName       string
	Email          string
	Phone          string
	Address        string
	DateOfBirth    string
	MembershipType string
	Skills         string
	Interests      []string
}
