package staff

import (
	"errors"
	"strings"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember")

// Member is a staff member. Members are referenced as the responsible party of items
// and as the actor of history entries; deleting a member clears those references.
type Member struct {
	id                     kernel.UUID
	username               string
	fullName               string
	dayBeforeNotifications bool
	guard                  guard.ConstructorGuard
}

func NewMember(id kernel.UUID, username, fullName string, dayBeforeNotifications bool) (*Member, error) {
	m := &Member{
		fullName:               strings.TrimSpace(fullName),
		dayBeforeNotifications: dayBeforeNotifications,
		guard:                  guard.NewConstructorGuard(),
	}

	var usernameErr error
	username = strings.TrimSpace(username)
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if err := errors.Join(id.Validate(), usernameErr); err != nil {
		return nil, err
	}
	m.id = id
	m.username = username

	return m, nil
}

func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

func (m *Member) ID() kernel.UUID {
	return m.id
}

func (m *Member) Username() string {
	return m.username
}

func (m *Member) FullName() string {
	return m.fullName
}

// DisplayName is the full name when known, the username otherwise.
func (m *Member) DisplayName() string {
	if m.fullName != "" {
		return m.fullName
	}
	return m.username
}

// DayBeforeNotifications reports whether the member wants deadline reminders.
func (m *Member) DayBeforeNotifications() bool {
	return m.dayBeforeNotifications
}
