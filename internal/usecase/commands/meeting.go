package commands

import (
	"context"

	"meetbook/internal/domain/meeting"
	"meetbook/internal/domain/user"
	reqdto "meetbook/internal/handler/dto/request"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/clock"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/queries"
	"meetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMeetingNotFound  = errs.New("meeting not found")
	ErrDomainValidation = errs.New("domain validation error")
)

type MeetingCommands interface {
	Create(ctx context.Context, req reqdto.CreateMeetingRequest, identity user.Identity) (*queries.MeetingView, error)
	// Delete removes the meeting with every slot, booked key and booking
	// hanging off it. Owner only.
	Delete(ctx context.Context, meetingID uuid.UUID, identity user.Identity) error
}

type meetingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMeetingUseCase(uow shared.UnitOfWork, clock clock.Clock) MeetingCommands {
	return &meetingUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (u *meetingUseCaseImpl) Create(ctx context.Context, req reqdto.CreateMeetingRequest, identity user.Identity) (*queries.MeetingView, error) {
	slotTimes := make([]meeting.SlotTimes, len(req.Slots))
	for i, s := range req.Slots {
		slotTimes[i] = meeting.SlotTimes{StartTime: s.StartTime, EndTime: s.EndTime}
	}

	m, err := meeting.NewMeeting(
		req.Title, req.Link, req.Description,
		meeting.Window{StartDate: req.StartDate, EndDate: req.EndDate},
		req.FutureDates,
		slotTimes,
		identity.Email,
		u.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Meetings().Create(ctx, m); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return meetingToView(m), nil
}

func (u *meetingUseCaseImpl) Delete(ctx context.Context, meetingID uuid.UUID, identity user.Identity) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().MeetingByID(ctx, meetingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMeetingNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		owner, err := user.NewEmail(snap.OwnerEmail)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !owner.Equals(identity.Email) {
			return ErrForbidden
		}

		if err := tx.Meetings().Delete(ctx, meetingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMeetingNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func meetingToView(m *meeting.Meeting) *queries.MeetingView {
	slots := make([]queries.SlotView, len(m.Slots()))
	for i, s := range m.Slots() {
		slots[i] = queries.SlotView{
			ID:        s.ID(),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
		}
	}

	booked := make([]string, len(m.Booked()))
	for i, k := range m.Booked() {
		booked[i] = k.String()
	}

	return &queries.MeetingView{
		ID:          m.ID(),
		Title:       m.Title(),
		Link:        m.Link(),
		Description: m.Description(),
		StartDate:   m.Window().StartDate,
		EndDate:     m.Window().EndDate,
		FutureDates: m.FutureDates(),
		Slots:       slots,
		Booked:      booked,
		Code:        m.Code(),
		OwnerEmail:  m.OwnerEmail().Value(),
		CreatedAt:   m.CreatedAt(),
	}
}
