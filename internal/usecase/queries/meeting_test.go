//go:build unit

package queries_test

import (
	"context"
	"testing"

	"meetbook/internal/domain/meeting"
	"meetbook/internal/infra"
	"meetbook/internal/usecase/queries"
	"meetbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMeetingReadStore struct {
	views map[uuid.UUID]*queries.MeetingView
}

func (s *stubMeetingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.MeetingView, error) {
	view, ok := s.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("meeting not found", nil, infra.KindNotFound)
	}
	return view, nil
}

func (s *stubMeetingReadStore) FindByCode(_ context.Context, code string) (*queries.MeetingView, error) {
	for _, view := range s.views {
		if view.Code == code {
			return view, nil
		}
	}
	return nil, infra.WrapRepoErr("meeting not found", nil, infra.KindNotFound)
}

func (s *stubMeetingReadStore) ListByOwner(_ context.Context, ownerEmail string) ([]*queries.MeetingView, error) {
	var out []*queries.MeetingView
	for _, view := range s.views {
		if view.OwnerEmail == ownerEmail {
			out = append(out, view)
		}
	}
	return out, nil
}

func TestMeetingQueries_AvailableSlots(t *testing.T) {
	ctx := context.Background()

	view := builder.NewMeetingBuilder().BuildView()
	require.Len(t, view.Slots, 2)

	// First slot is taken on 2024-05-01.
	bookedKey := meeting.NewOccurrenceKey("2024-05-01", view.Slots[0].StartTime, view.Slots[0].EndTime)
	view.Booked = []string{bookedKey.String()}

	q := queries.NewMeetingQueries(&stubMeetingReadStore{
		views: map[uuid.UUID]*queries.MeetingView{view.ID: view},
	})

	t.Run("excludes booked occurrences for the date", func(t *testing.T) {
		available, err := q.AvailableSlots(ctx, view.ID, "2024-05-01")
		require.NoError(t, err)

		require.Len(t, available, 1)
		assert.Equal(t, view.Slots[1].ID, available[0].ID)
	})

	t.Run("other dates are unaffected", func(t *testing.T) {
		available, err := q.AvailableSlots(ctx, view.ID, "2024-05-02")
		require.NoError(t, err)

		require.Len(t, available, 2)
		assert.Equal(t, view.Slots[0].ID, available[0].ID)
		assert.Equal(t, view.Slots[1].ID, available[1].ID)
	})

	t.Run("fully booked date returns an empty list", func(t *testing.T) {
		secondKey := meeting.NewOccurrenceKey("2024-05-01", view.Slots[1].StartTime, view.Slots[1].EndTime)
		view.Booked = append(view.Booked, secondKey.String())
		defer func() { view.Booked = view.Booked[:1] }()

		available, err := q.AvailableSlots(ctx, view.ID, "2024-05-01")
		require.NoError(t, err)
		assert.Empty(t, available)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		_, err := q.AvailableSlots(ctx, uuid.New(), "2024-05-01")
		assert.ErrorIs(t, err, queries.ErrMeetingNotFound)
	})
}

func TestMeetingQueries_GetByCode(t *testing.T) {
	ctx := context.Background()

	view := builder.NewMeetingBuilder().BuildView()
	q := queries.NewMeetingQueries(&stubMeetingReadStore{
		views: map[uuid.UUID]*queries.MeetingView{view.ID: view},
	})

	t.Run("resolves the invite code", func(t *testing.T) {
		got, err := q.GetByCode(ctx, view.Code)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := q.GetByCode(ctx, "0000000000")
		assert.ErrorIs(t, err, queries.ErrMeetingNotFound)
	})
}
