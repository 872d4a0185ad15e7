package commands

import (
	"context"

	"meetbook/internal/domain/booking"
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
	ErrInvalidSlot             = errs.New("invalid slot")
	ErrSlotAlreadyBooked       = errs.New("slot already booked")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrForbidden               = errs.New("forbidden")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	// Reserve books one occurrence (meeting, slot, date) for the caller.
	// The key insert and the booking insert share a transaction, so a lost
	// race surfaces as ErrSlotAlreadyBooked and nothing is persisted.
	Reserve(ctx context.Context, req reqdto.CreateBookingRequest, identity user.Identity) (*queries.BookingView, error)
	// CancelOwn frees the occurrence of a booking the caller created.
	CancelOwn(ctx context.Context, bookingID uuid.UUID, identity user.Identity) error
	// CancelAsMeetingOwner frees the occurrence of any booking on a meeting
	// the caller owns.
	CancelAsMeetingOwner(ctx context.Context, bookingID uuid.UUID, identity user.Identity) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (u *bookingUseCaseImpl) Reserve(ctx context.Context, req reqdto.CreateBookingRequest, identity user.Identity) (*queries.BookingView, error) {
	var created *booking.Booking

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().MeetingByID(ctx, req.MeetingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrInvalidSlot)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slot, ok := snap.SlotByID(req.SlotID)
		if !ok {
			return ErrInvalidSlot
		}

		key := meeting.NewOccurrenceKey(req.Date, slot.StartTime, slot.EndTime)
		if err := tx.Meetings().ReserveOccurrence(ctx, snap.ID, key); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrSlotAlreadyBooked)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created = booking.NewBooking(snap.ID, identity.Email, req.Date, booking.SlotSnapshot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}, u.clock.Now())

		if err := tx.Bookings().Create(ctx, created); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:        created.ID(),
		MeetingID: created.MeetingID(),
		UserEmail: created.UserEmail().Value(),
		Date:      created.Date(),
		Slot: queries.BookingSlotView{
			StartTime: created.Slot().StartTime,
			EndTime:   created.Slot().EndTime,
		},
		CreatedAt: created.CreatedAt(),
	}, nil
}

func (u *bookingUseCaseImpl) CancelOwn(ctx context.Context, bookingID uuid.UUID, identity user.Identity) error {
	return u.cancel(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		if !b.IsOwnedBy(identity.Email) {
			return ErrForbidden
		}
		return nil
	})
}

func (u *bookingUseCaseImpl) CancelAsMeetingOwner(ctx context.Context, bookingID uuid.UUID, identity user.Identity) error {
	return u.cancel(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		snap, err := tx.Reads().MeetingByID(ctx, b.MeetingID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
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
		return nil
	})
}

// cancel deletes the booking and releases its occurrence key in one
// transaction. The key is recomputed from the booking's stored snapshot.
func (u *bookingUseCaseImpl) cancel(
	ctx context.Context,
	bookingID uuid.UUID,
	authorize func(ctx context.Context, tx shared.Tx, b *booking.Booking) error,
) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		email, err := user.NewEmail(snap.UserEmail)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		b := booking.ReconstructBooking(snap.ID, snap.MeetingID, email, snap.Date, booking.SlotSnapshot{
			StartTime: snap.StartTime,
			EndTime:   snap.EndTime,
		}, snap.CreatedAt)

		if err := authorize(ctx, tx, b); err != nil {
			return err
		}

		if err := tx.Meetings().ReleaseOccurrence(ctx, b.MeetingID(), b.OccurrenceKey()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().Delete(ctx, b.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
