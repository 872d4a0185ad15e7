package queries

import (
	"context"
	"time"

	"meetbook/internal/domain/meeting"
	"meetbook/internal/domain/user"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMeetingNotFound = errs.New("meeting not found")
	ErrForbidden       = errs.New("forbidden")
)

// Read models (DTO for read side)
type SlotView struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type MeetingView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	FutureDates bool       `json:"futureDates"`
	Slots       []SlotView `json:"slots"`
	Booked      []string   `json:"booked"`
	Code        string     `json:"code"`
	OwnerEmail  string     `json:"ownerEmail"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type MeetingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MeetingView, error)
	FindByCode(ctx context.Context, code string) (*MeetingView, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*MeetingView, error)
}

type MeetingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MeetingView, error)
	GetByCode(ctx context.Context, code string) (*MeetingView, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*MeetingView, error)
	// AvailableSlots returns the meeting's slots, in stored order, whose
	// occurrence key for the date is not in the booked set.
	AvailableSlots(ctx context.Context, meetingID uuid.UUID, date string) ([]SlotView, error)
}

type meetingQueriesImpl struct {
	readStore MeetingReadStore
}

func NewMeetingQueries(readStore MeetingReadStore) MeetingQueries {
	return &meetingQueriesImpl{readStore: readStore}
}

func (q *meetingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MeetingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *meetingQueriesImpl) GetByCode(ctx context.Context, code string) (*MeetingView, error) {
	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *meetingQueriesImpl) ListByOwner(ctx context.Context, ownerEmail string) ([]*MeetingView, error) {
	return q.readStore.ListByOwner(ctx, ownerEmail)
}

func (q *meetingQueriesImpl) AvailableSlots(ctx context.Context, meetingID uuid.UUID, date string) ([]SlotView, error) {
	view, err := q.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	m, err := rehydrateMeeting(view)
	if err != nil {
		return nil, err
	}

	available := m.AvailableSlots(date)
	out := make([]SlotView, len(available))
	for i, s := range available {
		out[i] = SlotView{ID: s.ID(), StartTime: s.StartTime(), EndTime: s.EndTime()}
	}
	return out, nil
}

// rehydrateMeeting turns a read model back into the aggregate so availability
// keeps a single source of truth in the domain.
func rehydrateMeeting(view *MeetingView) (*meeting.Meeting, error) {
	owner, err := user.NewEmail(view.OwnerEmail)
	if err != nil {
		return nil, errs.Wrap(err, "stored owner email is invalid")
	}

	slots := make([]meeting.Slot, len(view.Slots))
	for i, s := range view.Slots {
		slots[i] = meeting.ReconstructSlot(s.ID, s.StartTime, s.EndTime)
	}
	booked := make([]meeting.OccurrenceKey, len(view.Booked))
	for i, k := range view.Booked {
		booked[i] = meeting.OccurrenceKey(k)
	}

	return meeting.ReconstructMeeting(
		view.ID, view.Title, view.Link, view.Description,
		meeting.Window{StartDate: view.StartDate, EndDate: view.EndDate},
		view.FutureDates, slots, booked, view.Code, owner,
		view.CreatedAt, view.CreatedAt,
	), nil
}
