//go:build unit

package meeting_test

import (
	"testing"

	"meetbook/internal/domain/meeting"
	"meetbook/internal/domain/user"
	"meetbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.MeetingBuilder)
	errIs  error
}

func TestMeeting(t *testing.T) {
	t.Run("valid meeting", func(t *testing.T) {
		actual, err := builder.NewMeetingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Len(t, actual.Slots(), 2)
		assert.NotEmpty(t, actual.Code())
		assert.Empty(t, actual.Booked())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid slots OK",
				mutate: func(b *builder.MeetingBuilder) {},
			},
			{
				name:   "empty title rejected",
				mutate: func(b *builder.MeetingBuilder) { b.WithTitle("") },
				errIs:  meeting.ErrEmptyTitle,
			},
			{
				name:   "no slots rejected",
				mutate: func(b *builder.MeetingBuilder) { b.WithSlots() },
				errIs:  meeting.ErrNoSlots,
			},
			{
				name: "empty slot time rejected",
				mutate: func(b *builder.MeetingBuilder) {
					b.WithSlots(meeting.SlotTimes{StartTime: "", EndTime: "10:30"})
				},
				errIs: meeting.ErrMalformedSlot,
			},
			{
				name: "whitespace slot time rejected",
				mutate: func(b *builder.MeetingBuilder) {
					b.WithSlots(meeting.SlotTimes{StartTime: "   ", EndTime: "10:30"})
				},
				errIs: meeting.ErrMalformedSlot,
			},
			{
				name: "zero-length slot rejected",
				mutate: func(b *builder.MeetingBuilder) {
					b.WithSlots(meeting.SlotTimes{StartTime: "10:00", EndTime: "10:00"})
				},
				errIs: meeting.ErrInvertedSlot,
			},
		})
	})
}

func TestMeeting_SlotIDs(t *testing.T) {
	t.Run("derived from position, stable across meetings", func(t *testing.T) {
		a, err := builder.NewMeetingBuilder().BuildDomain()
		require.NoError(t, err)
		b, err := builder.NewMeetingBuilder().WithTitle("Another").BuildDomain()
		require.NoError(t, err)

		// Same positions produce the same ids regardless of the meeting.
		for i := range a.Slots() {
			assert.Equal(t, a.Slots()[i].ID(), b.Slots()[i].ID())
		}
		assert.NotEqual(t, a.Slots()[0].ID(), a.Slots()[1].ID())
		assert.Len(t, a.Slots()[0].ID(), 12)
	})

	t.Run("lookup by id", func(t *testing.T) {
		m, err := builder.NewMeetingBuilder().BuildDomain()
		require.NoError(t, err)

		slot, err := m.SlotByID(m.Slots()[1].ID())
		require.NoError(t, err)
		assert.Equal(t, "11:00", slot.StartTime())

		_, err = m.SlotByID("unknown")
		assert.ErrorIs(t, err, meeting.ErrUnknownSlot)
	})
}

func TestMeeting_InviteCode(t *testing.T) {
	a, err := builder.NewMeetingBuilder().BuildDomain()
	require.NoError(t, err)
	b, err := builder.NewMeetingBuilder().BuildDomain()
	require.NoError(t, err)

	assert.Len(t, a.Code(), 10)
	// Different meeting ids seed different codes even at the same instant.
	assert.NotEqual(t, a.Code(), b.Code())
}

func TestMeeting_Ownership(t *testing.T) {
	m, err := builder.NewMeetingBuilder().WithOwner("owner@example.com").BuildDomain()
	require.NoError(t, err)

	owner, _ := user.NewEmail("owner@example.com")
	stranger, _ := user.NewEmail("stranger@example.com")

	assert.True(t, m.IsOwnedBy(owner))
	assert.False(t, m.IsOwnedBy(stranger))
}

func TestOccurrenceKey(t *testing.T) {
	key := meeting.NewOccurrenceKey("2024-05-01", "10:00", "10:30")
	assert.Equal(t, "2024-05-01--10:00--10:30", key.String())

	// Same times on a different date are a different occurrence.
	other := meeting.NewOccurrenceKey("2024-05-02", "10:00", "10:30")
	assert.NotEqual(t, key, other)
}

func TestMeeting_AvailableSlots(t *testing.T) {
	m, err := builder.NewMeetingBuilder().BuildDomain()
	require.NoError(t, err)

	first := m.Slots()[0]
	second := m.Slots()[1]

	booked := meeting.ReconstructMeeting(
		m.ID(), m.Title(), m.Link(), m.Description(), m.Window(), m.FutureDates(),
		m.Slots(),
		[]meeting.OccurrenceKey{first.KeyFor("2024-05-01")},
		m.Code(), m.OwnerEmail(), m.CreatedAt(), m.UpdatedAt(),
	)

	t.Run("booked occurrence excluded", func(t *testing.T) {
		available := booked.AvailableSlots("2024-05-01")
		require.Len(t, available, 1)
		assert.Equal(t, second.ID(), available[0].ID())
	})

	t.Run("other dates unaffected", func(t *testing.T) {
		available := booked.AvailableSlots("2024-05-02")
		assert.Len(t, available, 2)
	})

	t.Run("IsBooked matches by exact key", func(t *testing.T) {
		assert.True(t, booked.IsBooked(first.KeyFor("2024-05-01")))
		assert.False(t, booked.IsBooked(first.KeyFor("2024-05-02")))
		assert.False(t, booked.IsBooked(second.KeyFor("2024-05-01")))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewMeetingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.Nil(t, actual)
		})
	}
}
