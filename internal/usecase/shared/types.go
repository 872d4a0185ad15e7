package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side query types.

type SlotSnapshot struct {
	ID        string
	StartTime string
	EndTime   string
}

type MeetingSnapshot struct {
	ID         uuid.UUID
	OwnerEmail string
	Code       string
	Slots      []SlotSnapshot
}

func (m *MeetingSnapshot) SlotByID(slotID string) (SlotSnapshot, bool) {
	for _, s := range m.Slots {
		if s.ID == slotID {
			return s, true
		}
	}
	return SlotSnapshot{}, false
}

type BookingSnapshot struct {
	ID        uuid.UUID
	MeetingID uuid.UUID
	UserEmail string
	Date      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
}
