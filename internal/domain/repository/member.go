package repository

import (
	"context"

	"github.com/comrade-org/membership/internal/domain/model"
)

// MemberRepository describes persistence operations for members.
//
// Create inserts the member together with its notification outbox entries in a
// single transaction, so a registration is either fully durable (record plus
// queued emails) or not stored at all.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member, outbox []model.Notification) (*model.Member, error)
	GetByMemberID(ctx context.Context, memberID string) (*model.Member, error)
}
