package handlers

import (
	"context"

	"github.com/comrade-org/membership/internal/domain/model"
)

// RegistrationFacade describes the registration workflow required by handlers.
type RegistrationFacade interface {
	RegisterMember(ctx context.Context, in model.RegistrationInput) (*model.Member, error)
}

// MemberFacade provides member profile lookups.
type MemberFacade interface {
	MemberByID(ctx context.Context, memberID string) (*model.Member, error)
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// MembershipFacade aggregates the full set of operations used across handlers.
type MembershipFacade interface {
	RegistrationFacade
	MemberFacade
	HealthFacade
}
