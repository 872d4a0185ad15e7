package meeting

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrNoSlots         = errors.New("meeting must define at least one slot")
	ErrMalformedSlot   = errors.New("slot times must not be empty")
	ErrInvertedSlot    = errors.New("slot start must differ from slot end")
	ErrUnknownSlot     = errors.New("no such slot in meeting")
	ErrOccurrenceTaken = errors.New("occurrence already booked")
)

const keySeparator = "--"

// OccurrenceKey identifies one concrete bookable instance of a recurring
// slot: date + start + end. Uniqueness is scoped per meeting.
type OccurrenceKey string

func NewOccurrenceKey(date, startTime, endTime string) OccurrenceKey {
	return OccurrenceKey(date + keySeparator + startTime + keySeparator + endTime)
}

func (k OccurrenceKey) String() string {
	return string(k)
}

// Slot is a recurring time-of-day window. Its id is derived from the slot's
// position at creation time and never renumbered afterwards, so keys built
// from it stay stable across the meeting's lifetime.
type Slot struct {
	id        string
	startTime string
	endTime   string
}

func newSlot(position int, startTime, endTime string) (Slot, error) {
	startTime = strings.TrimSpace(startTime)
	endTime = strings.TrimSpace(endTime)
	if startTime == "" || endTime == "" {
		return Slot{}, ErrMalformedSlot
	}
	if startTime == endTime {
		return Slot{}, ErrInvertedSlot
	}
	return Slot{
		id:        deriveSlotID(position),
		startTime: startTime,
		endTime:   endTime,
	}, nil
}

func ReconstructSlot(id, startTime, endTime string) Slot {
	return Slot{id: id, startTime: startTime, endTime: endTime}
}

func (s Slot) ID() string        { return s.id }
func (s Slot) StartTime() string { return s.startTime }
func (s Slot) EndTime() string   { return s.endTime }

func (s Slot) KeyFor(date string) OccurrenceKey {
	return NewOccurrenceKey(date, s.startTime, s.endTime)
}

func deriveSlotID(position int) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "slot-%d", position))
	return hex.EncodeToString(sum[:])[:12]
}

// Invite codes only need to be unique enough to locate a meeting without its
// id; a truncated hash over id material and creation time is what the stored
// unique index defends.
func deriveInviteCode(seed string, at time.Time) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s-%d", seed, at.UnixNano()))
	return hex.EncodeToString(sum[:])[:10]
}
