package readstore

import (
	"context"

	"meetbook/internal/infra"
	"meetbook/internal/infra/db"
	"meetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingColumns = `id, meeting_id, user_email, date, slot_start_time, slot_end_time, created_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	view, err := scanBookingRow(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userEmail string) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_email = $1 ORDER BY created_at DESC`,
		userEmail,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return collectBookingRows(rows)
}

func (r *BookingReadStore) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE meeting_id = $1 ORDER BY created_at DESC`,
		meetingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by meeting", err)
	}
	return collectBookingRows(rows)
}

func collectBookingRows(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func scanBookingRow(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.MeetingID, &view.UserEmail, &view.Date,
		&view.Slot.StartTime, &view.Slot.EndTime, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
