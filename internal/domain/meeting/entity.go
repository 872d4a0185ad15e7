package meeting

import (
	"time"

	"meetbook/internal/domain/user"

	"github.com/google/uuid"
)

// SlotTimes is the caller-supplied shape of one slot before ids are assigned.
type SlotTimes struct {
	StartTime string
	EndTime   string
}

// Window is the optional validity window of a meeting. The times are opaque
// date strings; the core never parses them.
type Window struct {
	StartDate string
	EndDate   string
}

type Meeting struct {
	id          uuid.UUID
	title       string
	link        string
	description string
	window      Window
	futureDates bool
	slots       []Slot
	booked      []OccurrenceKey
	code        string
	ownerEmail  user.Email
	createdAt   time.Time
	updatedAt   time.Time
}

// NewMeeting assigns every slot its stable id and derives the invite code.
// The slot list is immutable afterwards; only the booked set ever changes.
func NewMeeting(
	title, link, description string,
	window Window,
	futureDates bool,
	slotTimes []SlotTimes,
	owner user.Email,
	now time.Time,
) (*Meeting, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(slotTimes) == 0 {
		return nil, ErrNoSlots
	}

	slots := make([]Slot, len(slotTimes))
	for i, st := range slotTimes {
		slot, err := newSlot(i, st.StartTime, st.EndTime)
		if err != nil {
			return nil, err
		}
		slots[i] = slot
	}

	id := uuid.New()
	return &Meeting{
		id:          id,
		title:       title,
		link:        link,
		description: description,
		window:      window,
		futureDates: futureDates,
		slots:       slots,
		booked:      nil,
		code:        deriveInviteCode(id.String(), now),
		ownerEmail:  owner,
		createdAt:   now,
	}, nil
}

func ReconstructMeeting(
	id uuid.UUID,
	title, link, description string,
	window Window,
	futureDates bool,
	slots []Slot,
	booked []OccurrenceKey,
	code string,
	ownerEmail user.Email,
	createdAt, updatedAt time.Time,
) *Meeting {
	return &Meeting{
		id:          id,
		title:       title,
		link:        link,
		description: description,
		window:      window,
		futureDates: futureDates,
		slots:       slots,
		booked:      booked,
		code:        code,
		ownerEmail:  ownerEmail,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (m *Meeting) ID() uuid.UUID          { return m.id }
func (m *Meeting) Title() string          { return m.title }
func (m *Meeting) Link() string           { return m.link }
func (m *Meeting) Description() string    { return m.description }
func (m *Meeting) Window() Window         { return m.window }
func (m *Meeting) FutureDates() bool      { return m.futureDates }
func (m *Meeting) Slots() []Slot          { return m.slots }
func (m *Meeting) Booked() []OccurrenceKey { return m.booked }
func (m *Meeting) Code() string           { return m.code }
func (m *Meeting) OwnerEmail() user.Email { return m.ownerEmail }
func (m *Meeting) CreatedAt() time.Time   { return m.createdAt }
func (m *Meeting) UpdatedAt() time.Time   { return m.updatedAt }

// IsOwnedBy is the ownership predicate behind delete and aggregate-view rights.
func (m *Meeting) IsOwnedBy(identity user.Email) bool {
	return m.ownerEmail.Equals(identity)
}

// SlotByID looks a slot up by its stable id, never by position.
func (m *Meeting) SlotByID(slotID string) (Slot, error) {
	for _, s := range m.slots {
		if s.ID() == slotID {
			return s, nil
		}
	}
	return Slot{}, ErrUnknownSlot
}

func (m *Meeting) IsBooked(key OccurrenceKey) bool {
	for _, k := range m.booked {
		if k == key {
			return true
		}
	}
	return false
}

// AvailableSlots returns every slot whose occurrence key for the given date
// is not booked, in stored slot order.
func (m *Meeting) AvailableSlots(date string) []Slot {
	available := make([]Slot, 0, len(m.slots))
	for _, s := range m.slots {
		if !m.IsBooked(s.KeyFor(date)) {
			available = append(available, s)
		}
	}
	return available
}
