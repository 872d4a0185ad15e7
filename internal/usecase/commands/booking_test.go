//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"meetbook/internal/domain/booking"
	"meetbook/internal/domain/meeting"
	"meetbook/internal/domain/user"
	reqdto "meetbook/internal/handler/dto/request"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/clock"
	"meetbook/internal/usecase/commands"
	"meetbook/internal/usecase/shared"
	"meetbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore backs a UnitOfWork with the same atomicity guarantee the real
// one gets from the booked-set primary key: insert-if-absent under a lock.
type fakeStore struct {
	mu       sync.Mutex
	meetings map[uuid.UUID]*shared.MeetingSnapshot
	booked   map[string]struct{}
	bookings map[uuid.UUID]*shared.BookingSnapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		meetings: make(map[uuid.UUID]*shared.MeetingSnapshot),
		booked:   make(map[string]struct{}),
		bookings: make(map[uuid.UUID]*shared.BookingSnapshot),
	}
}

func (s *fakeStore) bookedKey(meetingID uuid.UUID, key meeting.OccurrenceKey) string {
	return meetingID.String() + "|" + key.String()
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) Reads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Meetings() shared.MeetingRepository { return &fakeMeetingRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{store: t.store} }

type fakeMeetingRepo struct {
	store *fakeStore
}

func (r *fakeMeetingRepo) Create(_ context.Context, m *meeting.Meeting) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slots := make([]shared.SlotSnapshot, len(m.Slots()))
	for i, s := range m.Slots() {
		slots[i] = shared.SlotSnapshot{ID: s.ID(), StartTime: s.StartTime(), EndTime: s.EndTime()}
	}
	r.store.meetings[m.ID()] = &shared.MeetingSnapshot{
		ID:         m.ID(),
		OwnerEmail: m.OwnerEmail().Value(),
		Code:       m.Code(),
		Slots:      slots,
	}
	return nil
}

func (r *fakeMeetingRepo) ReserveOccurrence(_ context.Context, meetingID uuid.UUID, key meeting.OccurrenceKey) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	k := r.store.bookedKey(meetingID, key)
	if _, taken := r.store.booked[k]; taken {
		return infra.WrapRepoErr("occurrence already booked", nil, infra.KindDuplicateKey)
	}
	r.store.booked[k] = struct{}{}
	return nil
}

func (r *fakeMeetingRepo) ReleaseOccurrence(_ context.Context, meetingID uuid.UUID, key meeting.OccurrenceKey) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.booked, r.store.bookedKey(meetingID, key))
	return nil
}

func (r *fakeMeetingRepo) Delete(_ context.Context, meetingID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.meetings[meetingID]; !ok {
		return infra.WrapRepoErr("meeting not found", nil, infra.KindNotFound)
	}
	delete(r.store.meetings, meetingID)
	return nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.bookings[b.ID()] = &shared.BookingSnapshot{
		ID:        b.ID(),
		MeetingID: b.MeetingID(),
		UserEmail: b.UserEmail().Value(),
		Date:      b.Date(),
		StartTime: b.Slot().StartTime,
		EndTime:   b.Slot().EndTime,
		CreatedAt: b.CreatedAt(),
	}
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, bookingID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bookings[bookingID]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.store.bookings, bookingID)
	return nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) Create(_ context.Context, _ *user.User) error { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, _ uuid.UUID) error  { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) MeetingByID(_ context.Context, id uuid.UUID) (*shared.MeetingSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, ok := r.store.meetings[id]
	if !ok {
		return nil, infra.WrapRepoErr("meeting not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) UserRoleByEmail(_ context.Context, _ string) (string, error) {
	return "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func identityFor(t *testing.T, email string) user.Identity {
	t.Helper()
	e, err := user.NewEmail(email)
	require.NoError(t, err)
	return user.Identity{Email: e, Role: user.RoleUser}
}

func setupEngine(t *testing.T) (commands.BookingCommands, *fakeStore, *shared.MeetingSnapshot) {
	t.Helper()

	store := newFakeStore()
	snap := builder.NewMeetingBuilder().BuildSnapshot()
	store.meetings[snap.ID] = snap

	uc := commands.NewBookingUseCase(
		&fakeUoW{store: store},
		clock.NewMockClock(time.Date(2024, 4, 25, 15, 0, 0, 0, time.UTC)),
	)
	return uc, store, snap
}

func reserveReq(snap *shared.MeetingSnapshot, slotIdx int, date string) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		MeetingID: snap.ID,
		SlotID:    snap.Slots[slotIdx].ID,
		Date:      date,
	}
}

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("books a free occurrence", func(t *testing.T) {
		uc, store, snap := setupEngine(t)

		view, err := uc.Reserve(ctx, reserveReq(snap, 0, "2024-05-01"), identityFor(t, "guest@example.com"))
		require.NoError(t, err)

		assert.Equal(t, snap.ID, view.MeetingID)
		assert.Equal(t, "guest@example.com", view.UserEmail)
		assert.Equal(t, "2024-05-01", view.Date)
		assert.Equal(t, snap.Slots[0].StartTime, view.Slot.StartTime)

		key := meeting.NewOccurrenceKey("2024-05-01", snap.Slots[0].StartTime, snap.Slots[0].EndTime)
		_, taken := store.booked[store.bookedKey(snap.ID, key)]
		assert.True(t, taken)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("unknown meeting is an invalid slot", func(t *testing.T) {
		uc, _, snap := setupEngine(t)

		req := reserveReq(snap, 0, "2024-05-01")
		req.MeetingID = uuid.New()
		_, err := uc.Reserve(ctx, req, identityFor(t, "guest@example.com"))
		assert.ErrorIs(t, err, commands.ErrInvalidSlot)
	})

	t.Run("unknown slot id is an invalid slot", func(t *testing.T) {
		uc, _, snap := setupEngine(t)

		req := reserveReq(snap, 0, "2024-05-01")
		req.SlotID = "nonexistent"
		_, err := uc.Reserve(ctx, req, identityFor(t, "guest@example.com"))
		assert.ErrorIs(t, err, commands.ErrInvalidSlot)
	})

	t.Run("second reserve of the same occurrence fails", func(t *testing.T) {
		uc, store, snap := setupEngine(t)

		_, err := uc.Reserve(ctx, reserveReq(snap, 0, "2024-05-01"), identityFor(t, "first@example.com"))
		require.NoError(t, err)

		_, err = uc.Reserve(ctx, reserveReq(snap, 0, "2024-05-01"), identityFor(t, "second@example.com"))
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("same slot on another date stays free", func(t *testing.T) {
		uc, _, snap := setupEngine(t)

		_, err := uc.Reserve(ctx, reserveReq(snap, 0, "2024-05-01"), identityFor(t, "first@example.com"))
		require.NoError(t, err)

		_, err = uc.Reserve(ctx, reserveReq(snap, 0, "2024-05-02"), identityFor(t, "second@example.com"))
		assert.NoError(t, err)
	})

	t.Run("other slot on the same date stays free", func(t *testing.T) {
		uc, _, snap := setupEngine(t)

		_, err := uc.Reserve(ctx, reserveReq(snap, 0, "2024-05-01"), identityFor(t, "first@example.com"))
		require.NoError(t, err)

		_, err = uc.Reserve(ctx, reserveReq(snap, 1, "2024-05-01"), identityFor(t, "second@example.com"))
		assert.NoError(t, err)
	})
}

func TestReserve_Concurrent(t *testing.T) {
	const attempts = 32

	uc, store, snap := setupEngine(t)
	req := reserveReq(snap, 0, "2024-05-01")

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			identity := identityFor(t, "guest@example.com")
			_, errs[i] = uc.Reserve(context.Background(), req, identity)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent reserve may win")
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, store.bookings, 1)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	reserve := func(t *testing.T, uc commands.BookingCommands, snap *shared.MeetingSnapshot, email string) uuid.UUID {
		t.Helper()
		view, err := uc.Reserve(ctx, reserveReq(snap, 0, "2024-05-01"), identityFor(t, email))
		require.NoError(t, err)
		return view.ID
	}

	t.Run("creator frees the occurrence", func(t *testing.T) {
		uc, store, snap := setupEngine(t)
		id := reserve(t, uc, snap, "guest@example.com")

		require.NoError(t, uc.CancelOwn(ctx, id, identityFor(t, "guest@example.com")))
		assert.Empty(t, store.bookings)
		assert.Empty(t, store.booked)

		// The occurrence is immediately bookable again.
		_, err := uc.Reserve(ctx, reserveReq(snap, 0, "2024-05-01"), identityFor(t, "other@example.com"))
		assert.NoError(t, err)
	})

	t.Run("stranger may not cancel", func(t *testing.T) {
		uc, store, snap := setupEngine(t)
		id := reserve(t, uc, snap, "guest@example.com")

		err := uc.CancelOwn(ctx, id, identityFor(t, "stranger@example.com"))
		assert.ErrorIs(t, err, commands.ErrForbidden)
		assert.Len(t, store.bookings, 1)
		assert.Len(t, store.booked, 1)
	})

	t.Run("meeting owner cancels through the owner path", func(t *testing.T) {
		uc, store, snap := setupEngine(t)
		id := reserve(t, uc, snap, "guest@example.com")

		require.NoError(t, uc.CancelAsMeetingOwner(ctx, id, identityFor(t, snap.OwnerEmail)))
		assert.Empty(t, store.bookings)
		assert.Empty(t, store.booked)
	})

	t.Run("owner path rejects non-owners", func(t *testing.T) {
		uc, store, snap := setupEngine(t)
		id := reserve(t, uc, snap, "guest@example.com")

		err := uc.CancelAsMeetingOwner(ctx, id, identityFor(t, "stranger@example.com"))
		assert.ErrorIs(t, err, commands.ErrForbidden)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc, _, _ := setupEngine(t)

		err := uc.CancelOwn(ctx, uuid.New(), identityFor(t, "guest@example.com"))
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
