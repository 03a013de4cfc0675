package kernel

// Actor is whoever performs a change: a staff member, or the system for automated
// changes. The core never resolves actors; it only stores the reference.
type Actor struct {
	id *UUID
}

// SystemActor is used for changes made by jobs and by callers without an identity.
func SystemActor() Actor {
	return Actor{}
}

// NewActor returns the actor for staff member id.
func NewActor(id UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: &id}, nil
}

func (a Actor) IsSystem() bool {
	return a.id == nil
}

// ID returns the staff member reference, or nil for the system actor.
func (a Actor) ID() *UUID {
	if a.id == nil {
		return nil
	}
	id := *a.id
	return &id
}

func (a Actor) String() string {
	if a.id == nil {
		return "system"
	}
	return a.id.String()
}
