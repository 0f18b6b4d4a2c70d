package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/comrade-org/membership/internal/domain/model"
)

func TestComposeBuildsApplicantAndAdminMessages(t *testing.T) {
	composer := NewNotificationComposer("admin@example.com")
	composer.now = func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) }

	member := &model.Member{
		MemberID:       "COM-123456-789",
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		MembershipType: "standard",
	}

	notifications, err := composer.Compose(member)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifications))
	}

	applicant, admin := notifications[0], notifications[1]

	if applicant.Kind != model.NotificationKindApplicantConfirmation {
		t.Fatalf("unexpected first kind %q", applicant.Kind)
	}
	if applicant.Recipient != "jane@example.com" {
		t.Fatalf("applicant recipient %q", applicant.Recipient)
	}
	if applicant.Subject != "Welcome to Comrade Organization" {
		t.Fatalf("applicant subject %q", applicant.Subject)
	}
	for _, want := range []string{"Jane Doe", "COM-123456-789", "standard", "March 15, 2024"} {
		if !strings.Contains(applicant.Body, want) {
			t.Fatalf("applicant body missing %q", want)
		}
	}

	if admin.Kind != model.NotificationKindAdminAlert {
		t.Fatalf("unexpected second kind %q", admin.Kind)
	}
	if admin.Recipient != "admin@example.com" {
		t.Fatalf("admin recipient %q", admin.Recipient)
	}
	if admin.Subject != "New Member Registration" {
		t.Fatalf("admin subject %q", admin.Subject)
	}
	for _, want := range []string{"Jane Doe", "jane@example.com", "COM-123456-789"} {
		if !strings.Contains(admin.Body, want) {
			t.Fatalf("admin body missing %q", want)
		}
	}

	if applicant.ID == admin.ID {
		t.Fatal("notifications must carry distinct identifiers")
	}
}

func TestComposeEscapesMarkup(t *testing.T) {
	composer := NewNotificationComposer("admin@example.com")

	member := &model.Member{
		MemberID:       "COM-000001-001",
		FullName:       "<script>alert(1)</script>",
		Email:          "x@example.com",
		MembershipType: "standard",
	}

	notifications, err := composer.Compose(member)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(notifications[0].Body, "<script>") {
		t.Fatal("member-supplied markup must be escaped")
	}
}
