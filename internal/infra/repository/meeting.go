package repository

import (
	"context"

	"meetbook/internal/domain/meeting"
	"meetbook/internal/infra"
	"meetbook/internal/infra/db"

	"github.com/google/uuid"
)

type MeetingRepository struct {
	db db.DBTX
}

func NewMeetingRepository(dbtx db.DBTX) *MeetingRepository {
	return &MeetingRepository{db: dbtx}
}

func (r *MeetingRepository) Create(ctx context.Context, m *meeting.Meeting) error {
	const insertMeeting = `
		INSERT INTO meetings (id, title, link, description, start_date, end_date, future_dates, code, owner_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, insertMeeting,
		m.ID(), m.Title(), m.Link(), m.Description(),
		m.Window().StartDate, m.Window().EndDate, m.FutureDates(),
		m.Code(), m.OwnerEmail().Value(), m.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create meeting", err)
	}

	const insertSlot = `
		INSERT INTO meeting_slots (meeting_id, slot_id, start_time, end_time, position)
		VALUES ($1, $2, $3, $4, $5)`

	for i, slot := range m.Slots() {
		if _, err := r.db.Exec(ctx, insertSlot, m.ID(), slot.ID(), slot.StartTime(), slot.EndTime(), i); err != nil {
			return infra.WrapRepoErr("failed to create meeting slot", err)
		}
	}

	return nil
}

// ReserveOccurrence is the atomic insert-if-absent on the booked set: the
// (meeting_id, occurrence_key) primary key turns a concurrent double-book
// into a duplicate-key error instead of a lost update.
func (r *MeetingRepository) ReserveOccurrence(ctx context.Context, meetingID uuid.UUID, key meeting.OccurrenceKey) error {
	const q = `
		INSERT INTO meeting_booked_slots (meeting_id, occurrence_key)
		VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, q, meetingID, key.String()); err != nil {
		return infra.WrapRepoErr("failed to reserve occurrence", err)
	}
	return nil
}

// ReleaseOccurrence deletes by value; keys differ by date so a coinciding
// time pair on another date is never touched.
func (r *MeetingRepository) ReleaseOccurrence(ctx context.Context, meetingID uuid.UUID, key meeting.OccurrenceKey) error {
	const q = `
		DELETE FROM meeting_booked_slots
		WHERE meeting_id = $1 AND occurrence_key = $2`

	if _, err := r.db.Exec(ctx, q, meetingID, key.String()); err != nil {
		return infra.WrapRepoErr("failed to release occurrence", err)
	}
	return nil
}

// Delete cascades to slots, booked keys and bookings through foreign keys.
func (r *MeetingRepository) Delete(ctx context.Context, meetingID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, meetingID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete meeting", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("meeting not found", nil, infra.KindNotFound)
	}
	return nil
}
