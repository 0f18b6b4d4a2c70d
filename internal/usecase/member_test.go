package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/comrade-org/membership/internal/domain/errors"
	"github.com/comrade-org/membership/internal/test"
)

func TestMemberByID(t *testing.T) {
	repo := test.NewMemberRepositoryStub()
	uc := newRegistrationUseCase(repo, "COM-555555-123")
	if _, err := uc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}

	members := NewMemberUseCase(repo)
	member, err := members.ByMemberID(context.Background(), "COM-555555-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.Email != "jane@example.com" {
		t.Fatalf("unexpected member %+v", member)
	}
}

func TestMemberByIDNotFound(t *testing.T) {
	members := NewMemberUseCase(test.NewMemberRepositoryStub())
	if _, err := members.ByMemberID(context.Background(), "COM-000000-000"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
