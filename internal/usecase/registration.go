package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/comrade-org/membership/internal/domain/errors"
	"github.com/comrade-org/membership/internal/domain/model"
	"github.com/comrade-org/membership/internal/domain/repository"
	"github.com/comrade-org/membership/internal/pkg/memberid"
)

// memberIDAttempts bounds identifier regeneration when the generated token
// collides with an existing one. Email collisions are never retried.
const memberIDAttempts = 3

// RegistrationUseCase handles the member registration workflow.
type RegistrationUseCase struct {
	members  repository.MemberRepository
	ids      memberid.Generator
	composer *NotificationComposer
}

// NewRegistrationUseCase constructs RegistrationUseCase.
func NewRegistrationUseCase(members repository.MemberRepository, ids memberid.Generator, composer *NotificationComposer) *RegistrationUseCase {
	return &RegistrationUseCase{members: members, ids: ids, composer: composer}
}

// Register validates applicant data, assigns a member identifier, and stores
// the record together with its two queued notifications in one transaction.
// Persistence success is the durability boundary: the registration is
// complete once this returns, regardless of later email delivery.
func (u *RegistrationUseCase) Register(ctx context.Context, in model.RegistrationInput) (*model.Member, error) {
	dob, err := ValidateRegistration(in)
	if err != nil {
		return nil, err
	}

	member := &model.Member{
		FullName:       strings.TrimSpace(in.FullName),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Address:        strings.TrimSpace(in.Address),
		DateOfBirth:    dob,
		MembershipType: strings.TrimSpace(in.MembershipType),
		Interests:      in.Interests,
	}
	if skills := strings.TrimSpace(in.Skills); skills != "" {
		member.Skills = &skills
	}
	if member.Interests == nil {
		member.Interests = []string{}
	}

	for attempt := 0; attempt < memberIDAttempts; attempt++ {
		member.MemberID = u.ids.Generate()

		outbox, err := u.composer.Compose(member)
		if err != nil {
			return nil, err
		}

		stored, err := u.members.Create(ctx, member, outbox)
		if err != nil {
			if errors.Is(err, domainErrors.ErrMemberIDTaken) {
				continue
			}
			return nil, err
		}
		return stored, nil
	}

	return nil, fmt.Errorf("identifier collision persisted after %d attempts: %w", memberIDAttempts, domainErrors.ErrMemberIDTaken)
}
