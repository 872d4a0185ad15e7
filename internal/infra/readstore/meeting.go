package readstore

import (
	"context"
	"time"

	"meetbook/internal/infra"
	"meetbook/internal/infra/db"
	"meetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MeetingReadStore struct {
	db db.DBTX
}

func NewMeetingReadStore(dbtx db.DBTX) *MeetingReadStore {
	return &MeetingReadStore{db: dbtx}
}

const meetingColumns = `id, title, link, description, start_date, end_date, future_dates, code, owner_email, created_at`

func (r *MeetingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MeetingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+meetingColumns+` FROM meetings WHERE id = $1`, id)
	return r.scanMeeting(ctx, row, "failed to find meeting by id")
}

func (r *MeetingReadStore) FindByCode(ctx context.Context, code string) (*queries.MeetingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+meetingColumns+` FROM meetings WHERE code = $1`, code)
	return r.scanMeeting(ctx, row, "failed to find meeting by code")
}

func (r *MeetingReadStore) ListByOwner(ctx context.Context, ownerEmail string) ([]*queries.MeetingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+meetingColumns+` FROM meetings WHERE owner_email = $1 ORDER BY created_at DESC`,
		ownerEmail,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meetings by owner", err)
	}
	defer rows.Close()

	var views []*queries.MeetingView
	for rows.Next() {
		view, err := scanMeetingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan meeting row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate meeting rows", err)
	}

	for _, view := range views {
		if err := r.attachSlotsAndBooked(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (r *MeetingReadStore) scanMeeting(ctx context.Context, row pgx.Row, msg string) (*queries.MeetingView, error) {
	view, err := scanMeetingRow(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meeting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}

	if err := r.attachSlotsAndBooked(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func scanMeetingRow(row pgx.Row) (*queries.MeetingView, error) {
	var view queries.MeetingView
	var createdAt time.Time
	err := row.Scan(
		&view.ID, &view.Title, &view.Link, &view.Description,
		&view.StartDate, &view.EndDate, &view.FutureDates,
		&view.Code, &view.OwnerEmail, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = createdAt
	return &view, nil
}

func (r *MeetingReadStore) attachSlotsAndBooked(ctx context.Context, view *queries.MeetingView) error {
	slotRows, err := r.db.Query(ctx,
		`SELECT slot_id, start_time, end_time FROM meeting_slots WHERE meeting_id = $1 ORDER BY position`,
		view.ID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to load meeting slots", err)
	}
	defer slotRows.Close()

	view.Slots = []queries.SlotView{}
	for slotRows.Next() {
		var slot queries.SlotView
		if err := slotRows.Scan(&slot.ID, &slot.StartTime, &slot.EndTime); err != nil {
			return infra.WrapRepoErr("failed to scan slot row", err)
		}
		view.Slots = append(view.Slots, slot)
	}
	if err := slotRows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	bookedRows, err := r.db.Query(ctx,
		`SELECT occurrence_key FROM meeting_booked_slots WHERE meeting_id = $1 ORDER BY occurrence_key`,
		view.ID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to load booked occurrences", err)
	}
	defer bookedRows.Close()

	view.Booked = []string{}
	for bookedRows.Next() {
		var key string
		if err := bookedRows.Scan(&key); err != nil {
			return infra.WrapRepoErr("failed to scan booked row", err)
		}
		view.Booked = append(view.Booked, key)
	}
	if err := bookedRows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate booked rows", err)
	}

	return nil
}
