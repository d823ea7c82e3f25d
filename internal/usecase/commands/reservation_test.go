//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"needboard/internal/infra"
	"needboard/internal/pkg/errs"
	"needboard/internal/usecase/commands"
	"needboard/tests/common/builder"
	commandsmock "needboard/tests/mock/commands"
	queriesmock "needboard/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allocatorMocks struct {
	lifecycle    *commandsmock.MockNeedLifecycle
	reservations *commandsmock.MockReservationRepository
	reads        *queriesmock.MockReservationReadStore
}

func newAllocator(t *testing.T) (commands.ReservationCommands, allocatorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := allocatorMocks{
		lifecycle:    commandsmock.NewMockNeedLifecycle(ctrl),
		reservations: commandsmock.NewMockReservationRepository(ctrl),
		reads:        queriesmock.NewMockReservationReadStore(ctrl),
	}
	return commands.NewReservationCommands(m.lifecycle, m.reservations, m.reads), m
}

func claimedSlot(needID uuid.UUID) *commands.ClaimedSlot {
	n := builder.NewNeedBuilder().BuildReconstructed(needID)
	return &commands.ClaimedSlot{Need: n, Remaining: 4}
}

func TestReservationCommands_Allocate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: claims, records, reads back", func(t *testing.T) {
		allocator, m := newAllocator(t)
		needID := uuid.New()
		view := builder.NewReservationBuilder().BuildView(uuid.New())

		m.lifecycle.EXPECT().ClaimSlot(ctx, needID).Return(claimedSlot(needID), nil)
		m.reservations.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
		m.reads.EXPECT().FindByID(ctx, gomock.Any()).Return(view, nil)

		got, err := allocator.Allocate(ctx, commands.AllocateParams{
			NeedID:      needID,
			VolunteerID: "vol-42",
			Note:        "I can drive",
		})
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: input validation rejects before any claim", func(t *testing.T) {
		testCases := []struct {
			name   string
			params commands.AllocateParams
		}{
			{
				name:   "nil need id",
				params: commands.AllocateParams{NeedID: uuid.Nil, VolunteerID: "vol-42"},
			},
			{
				name:   "blank volunteer id",
				params: commands.AllocateParams{NeedID: uuid.New(), VolunteerID: "   "},
			},
			{
				name: "note too long",
				params: commands.AllocateParams{
					NeedID:      uuid.New(),
					VolunteerID: "vol-42",
					Note:        string(make([]byte, 501)),
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// No mock expectations: nothing may be claimed.
				allocator, _ := newAllocator(t)
				_, err := allocator.Allocate(ctx, tc.params)
				assert.True(t, errs.Is(err, commands.ErrInvalidInput), "got: %v", err)
			})
		}
	})

	t.Run("error: claim failure has nothing to compensate", func(t *testing.T) {
		for _, claimErr := range []error{
			commands.ErrNeedNotFound,
			commands.ErrNeedClosed,
			commands.ErrNeedExpired,
			commands.ErrNeedExhausted,
			commands.ErrSlotContended,
		} {
			allocator, m := newAllocator(t)
			needID := uuid.New()
			m.lifecycle.EXPECT().ClaimSlot(ctx, needID).Return(nil, claimErr)

			_, err := allocator.Allocate(ctx, commands.AllocateParams{NeedID: needID, VolunteerID: "vol-42"})
			assert.True(t, errs.Is(err, claimErr), "got: %v", err)
		}
	})

	t.Run("error: duplicate insert compensates and reports already requested", func(t *testing.T) {
		allocator, m := newAllocator(t)
		needID := uuid.New()

		m.lifecycle.EXPECT().ClaimSlot(ctx, needID).Return(claimedSlot(needID), nil)
		m.reservations.EXPECT().Insert(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("unique key violated", nil, infra.KindDuplicateKey))
		m.lifecycle.EXPECT().ReleaseSlot(ctx, needID).Return(nil).Times(1)

		_, err := allocator.Allocate(ctx, commands.AllocateParams{NeedID: needID, VolunteerID: "vol-42"})
		assert.True(t, errs.Is(err, commands.ErrAlreadyRequested), "got: %v", err)
		assert.False(t, errs.Is(err, commands.ErrCompensationFailed), "got: %v", err)
	})

	t.Run("error: insert failure compensates and reports storage failure", func(t *testing.T) {
		allocator, m := newAllocator(t)
		needID := uuid.New()

		m.lifecycle.EXPECT().ClaimSlot(ctx, needID).Return(claimedSlot(needID), nil)
		m.reservations.EXPECT().Insert(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("insert failed", errors.New("connection reset")))
		m.lifecycle.EXPECT().ReleaseSlot(ctx, needID).Return(nil).Times(1)

		_, err := allocator.Allocate(ctx, commands.AllocateParams{NeedID: needID, VolunteerID: "vol-42"})
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got: %v", err)
	})

	t.Run("error: failed compensation escalates without hiding the cause", func(t *testing.T) {
		allocator, m := newAllocator(t)
		needID := uuid.New()

		m.lifecycle.EXPECT().ClaimSlot(ctx, needID).Return(claimedSlot(needID), nil)
		m.reservations.EXPECT().Insert(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("unique key violated", nil, infra.KindDuplicateKey))
		m.lifecycle.EXPECT().ReleaseSlot(ctx, needID).Return(commands.ErrStorageFailure)

		_, err := allocator.Allocate(ctx, commands.AllocateParams{NeedID: needID, VolunteerID: "vol-42"})
		assert.True(t, errs.Is(err, commands.ErrCompensationFailed), "got: %v", err)
		assert.True(t, errs.Is(err, commands.ErrAlreadyRequested), "got: %v", err)
	})

	t.Run("error: read-back failure does not release the recorded slot", func(t *testing.T) {
		allocator, m := newAllocator(t)
		needID := uuid.New()

		m.lifecycle.EXPECT().ClaimSlot(ctx, needID).Return(claimedSlot(needID), nil)
		m.reservations.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
		m.reads.EXPECT().FindByID(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("read failed", errors.New("connection reset")))

		_, err := allocator.Allocate(ctx, commands.AllocateParams{NeedID: needID, VolunteerID: "vol-42"})
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got: %v", err)
	})
}

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deletes then releases", func(t *testing.T) {
		allocator, m := newAllocator(t)
		res := builder.NewReservationBuilder().BuildReconstructed(uuid.New())

		gomock.InOrder(
			m.reservations.EXPECT().FindByID(ctx, res.ID()).Return(res, nil),
			m.reservations.EXPECT().Delete(ctx, res.ID()).Return(nil),
			m.lifecycle.EXPECT().ReleaseSlot(ctx, res.NeedID()).Return(nil),
		)

		assert.NoError(t, allocator.Cancel(ctx, res.ID(), "vol-42"))
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		allocator, m := newAllocator(t)
		id := uuid.New()
		m.reservations.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		assert.True(t, errs.Is(allocator.Cancel(ctx, id, "vol-42"), commands.ErrReservationNotFound))
	})

	t.Run("error: failed delete releases nothing", func(t *testing.T) {
		allocator, m := newAllocator(t)
		res := builder.NewReservationBuilder().BuildReconstructed(uuid.New())

		m.reservations.EXPECT().FindByID(ctx, res.ID()).Return(res, nil)
		m.reservations.EXPECT().Delete(ctx, res.ID()).
			Return(infra.WrapRepoErr("delete failed", errors.New("connection reset")))

		err := allocator.Cancel(ctx, res.ID(), "vol-42")
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got: %v", err)
	})

	t.Run("error: delete racing another cancel reads as not found", func(t *testing.T) {
		allocator, m := newAllocator(t)
		res := builder.NewReservationBuilder().BuildReconstructed(uuid.New())

		m.reservations.EXPECT().FindByID(ctx, res.ID()).Return(res, nil)
		m.reservations.EXPECT().Delete(ctx, res.ID()).
			Return(infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		assert.True(t, errs.Is(allocator.Cancel(ctx, res.ID(), "vol-42"), commands.ErrReservationNotFound))
	})

	t.Run("error: failed release after delete escalates", func(t *testing.T) {
		allocator, m := newAllocator(t)
		res := builder.NewReservationBuilder().BuildReconstructed(uuid.New())

		m.reservations.EXPECT().FindByID(ctx, res.ID()).Return(res, nil)
		m.reservations.EXPECT().Delete(ctx, res.ID()).Return(nil)
		m.lifecycle.EXPECT().ReleaseSlot(ctx, res.NeedID()).Return(commands.ErrStorageFailure)

		err := allocator.Cancel(ctx, res.ID(), "vol-42")
		assert.True(t, errs.Is(err, commands.ErrReleaseFailed), "got: %v", err)
	})
}
