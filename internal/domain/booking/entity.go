package booking

import (
	"time"

	"meetbook/internal/domain/meeting"
	"meetbook/internal/domain/user"

	"github.com/google/uuid"
)

// SlotSnapshot is copied from the meeting's slot at booking time. Later edits
// to the meeting never change historical bookings; the snapshot is the
// authoritative source when the occurrence key has to be recomputed.
type SlotSnapshot struct {
	StartTime string
	EndTime   string
}

type Booking struct {
	id        uuid.UUID
	meetingID uuid.UUID
	userEmail user.Email
	date      string
	slot      SlotSnapshot
	createdAt time.Time
}

func NewBooking(meetingID uuid.UUID, userEmail user.Email, date string, slot SlotSnapshot, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		meetingID: meetingID,
		userEmail: userEmail,
		date:      date,
		slot:      slot,
		createdAt: now,
	}
}

func ReconstructBooking(id, meetingID uuid.UUID, userEmail user.Email, date string, slot SlotSnapshot, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		meetingID: meetingID,
		userEmail: userEmail,
		date:      date,
		slot:      slot,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) MeetingID() uuid.UUID  { return b.meetingID }
func (b *Booking) UserEmail() user.Email { return b.userEmail }
func (b *Booking) Date() string          { return b.date }
func (b *Booking) Slot() SlotSnapshot    { return b.slot }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }

// OccurrenceKey recomputes the key from the stored snapshot, not from the
// meeting's current slot list.
func (b *Booking) OccurrenceKey() meeting.OccurrenceKey {
	return meeting.NewOccurrenceKey(b.date, b.slot.StartTime, b.slot.EndTime)
}

// IsOwnedBy gates self-cancellation; the meeting owner's cancel right is
// checked against the meeting, not the booking.
func (b *Booking) IsOwnedBy(identity user.Email) bool {
	return b.userEmail.Equals(identity)
}
