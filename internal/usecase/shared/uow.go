package shared

import (
	"context"

	"meetbook/internal/domain/booking"
	"meetbook/internal/domain/meeting"
	"meetbook/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: direct access to command reads outside a transaction
	Reads() CommandReads
}

type Tx interface {
	Meetings() MeetingRepository
	Bookings() BookingRepository
	Users() UserRepository
	Reads() CommandReads
}

// MeetingRepository is the sole writer of the booked set. ReserveOccurrence
// is insert-if-absent: a second insert of the same (meeting, key) pair must
// fail with a duplicate-key error, which is the whole no-double-booking
// invariant.
type MeetingRepository interface {
	Create(ctx context.Context, m *meeting.Meeting) error
	ReserveOccurrence(ctx context.Context, meetingID uuid.UUID, key meeting.OccurrenceKey) error
	ReleaseOccurrence(ctx context.Context, meetingID uuid.UUID, key meeting.OccurrenceKey) error
	Delete(ctx context.Context, meetingID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, bookingID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type CommandReads interface {
	MeetingByID(ctx context.Context, id uuid.UUID) (*MeetingSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserRoleByEmail(ctx context.Context, email string) (string, error)
}
