package usecase

import (
	"context"

	"github.com/comrade-org/membership/internal/domain/model"
	"github.com/comrade-org/membership/internal/domain/repository"
)

// MemberUseCase serves the read path for member profiles.
type MemberUseCase struct {
	members repository.MemberRepository
}

// NewMemberUseCase constructs MemberUseCase.
func NewMemberUseCase(members repository.MemberRepository) *MemberUseCase {
	return &MemberUseCase{members: members}
}

// ByMemberID fetches a member by membership identifier.
func (u *MemberUseCase) ByMemberID(ctx context.Context, memberID string) (*model.Member, error) {
	return u.members.GetByMemberID(ctx, memberID)
}
