//go:build unit || e2e

package builder

import (
	"time"

	"meetbook/internal/domain/booking"
	"meetbook/internal/domain/user"
	"meetbook/internal/usecase/queries"
	"meetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	MeetingID uuid.UUID
	UserEmail string
	Date      string
	StartTime string
	EndTime   string
	Now       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		MeetingID: uuid.New(),
		UserEmail: "guest@example.com",
		Date:      "2024-05-01",
		StartTime: "10:00",
		EndTime:   "10:30",
		Now:       time.Date(2024, 4, 25, 15, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	email, err := user.NewEmail(b.UserEmail)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.MeetingID, email, b.Date, booking.SlotSnapshot{
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}, b.Now), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        uuid.New(),
		MeetingID: b.MeetingID,
		UserEmail: b.UserEmail,
		Date:      b.Date,
		Slot: queries.BookingSlotView{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		},
		CreatedAt: b.Now,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:        uuid.New(),
		MeetingID: b.MeetingID,
		UserEmail: b.UserEmail,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		CreatedAt: b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestMap(slotID string) map[string]any {
	return map[string]any{
		"meetingId": b.MeetingID.String(),
		"slotId":    slotID,
		"date":      b.Date,
	}
}

func (b *BookingBuilder) WithMeetingID(id uuid.UUID) *BookingBuilder {
	b.MeetingID = id
	return b
}

func (b *BookingBuilder) WithUserEmail(email string) *BookingBuilder {
	b.UserEmail = email
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlotTimes(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}
