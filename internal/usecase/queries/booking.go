package queries

import (
	"context"
	"time"

	"meetbook/internal/domain/user"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingSlotView struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type BookingView struct {
	ID        uuid.UUID       `json:"id"`
	MeetingID uuid.UUID       `json:"meetingId"`
	UserEmail string          `json:"userEmail"`
	Date      string          `json:"date"`
	Slot      BookingSlotView `json:"slot"`
	CreatedAt time.Time       `json:"createdAt"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userEmail string) ([]*BookingView, error)
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userEmail string) ([]*BookingView, error)
	// ListByMeeting is the owner-only aggregate view over a meeting's bookings.
	ListByMeeting(ctx context.Context, meetingID uuid.UUID, identity user.Identity) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore        BookingReadStore
	meetingReadStore MeetingReadStore
}

func NewBookingQueries(readStore BookingReadStore, meetingReadStore MeetingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore:        readStore,
		meetingReadStore: meetingReadStore,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userEmail string) ([]*BookingView, error) {
	return q.readStore.ListByUser(ctx, userEmail)
}

func (q *bookingQueriesImpl) ListByMeeting(ctx context.Context, meetingID uuid.UUID, identity user.Identity) ([]*BookingView, error) {
	m, err := q.meetingReadStore.FindByID(ctx, meetingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}

	if m.OwnerEmail != identity.Email.Value() {
		return nil, ErrForbidden
	}

	return q.readStore.ListByMeeting(ctx, meetingID)
}
