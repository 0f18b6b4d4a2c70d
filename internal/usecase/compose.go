package usecase

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/comrade-org/membership/internal/domain/model"
)

const applicantSubject = "Welcome to Comrade Organization"

const adminSubject = "New Member Registration"

const applicantTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px;">
    <h2 style="color: #d32f2f; text-align: center;">Comrade Organization Membership Confirmation</h2>
    <p>Dear {{.FullName}},</p>
    <p>Thank you for joining the Comrade Organization. Your registration has been successfully processed.</p>
    <div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0;">
        <h3 style="margin-top: 0;">Membership Details:</h3>
        <p><strong>Member ID:</strong> {{.MemberID}}</p>
        <p><strong>Membership Type:</strong> {{.MembershipType}}</p>
        <p><strong>Registration Date:</strong> {{.RegistrationDate}}</p>
    </div>
    <p>Please save this email for your records. You can access your member profile and benefits by logging in to our portal with your email and member ID.</p>
    <p>If you have any questions, please contact our support team.</p>
    <p>In solidarity,<br>Comrade Organization Team</p>
</div>`

const adminTemplate = `<h3>New Member Registration</h3>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Member ID:</strong> {{.MemberID}}</p>
<p><strong>Membership Type:</strong> {{.MembershipType}}</p>
<p><strong>Registration Date:</strong> {{.RegistrationDate}}</p>`

var (
	applicantTmpl = template.Must(template.New("applicant").Parse(applicantTemplate))
	adminTmpl     = template.Must(template.New("admin").Parse(adminTemplate))
)

type composeData struct {
	FullName         string
	Email            string
	MemberID         string
	MembershipType   string
	RegistrationDate string
}

// NotificationComposer renders the applicant confirmation and the admin alert
// for a registration. Messages are rendered at enqueue time, inside the same
// transaction that stores the member.
type NotificationComposer struct {
	adminEmail string
	now        func() time.Time
}

// NewNotificationComposer constructs composer with a fixed admin recipient.
func NewNotificationComposer(adminEmail string) *NotificationComposer {
	return &NotificationComposer{adminEmail: adminEmail, now: time.Now}
}

// Compose builds the two outbox entries for a member about to be stored.
func (c *NotificationComposer) Compose(member *model.Member) ([]model.Notification, error) {
	data := composeData{
		FullName:         member.FullName,
		Email:            member.Email,
		MemberID:         member.MemberID,
		MembershipType:   member.MembershipType,
		RegistrationDate: c.now().Format("January 2, 2006"),
	}

	applicantBody, err := render(applicantTmpl, data)
	if err != nil {
		return nil, fmt.Errorf("render applicant confirmation: %w", err)
	}
	adminBody, err := render(adminTmpl, data)
	if err != nil {
		return nil, fmt.Errorf("render admin alert: %w", err)
	}

	return []model.Notification{
		{
			ID:        uuid.New(),
			Kind:      model.NotificationKindApplicantConfirmation,
			Recipient: member.Email,
			Subject:   applicantSubject,
			Body:      applicantBody,
			Status:    model.NotificationStatusPending,
		},
		{
			ID:        uuid.New(),
			Kind:      model.NotificationKindAdminAlert,
			Recipient: c.adminEmail,
			Subject:   adminSubject,
			Body:      adminBody,
			Status:    model.NotificationStatusPending,
		},
	}, nil
}

func render(tmpl *template.Template, data composeData) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
