package vesting

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adt "github.com/vestlock/vesting-actors/actors/util/adt"
	"github.com/vestlock/vesting-actors/support/ipld"
	tutil "github.com/vestlock/vesting-actors/support/testing"
)

func schedule(locked, perBlock int64, start abi.ChainEpoch) VestingSchedule {
	return VestingSchedule{
		Locked:        abi.NewTokenAmount(locked),
		PerBlock:      abi.NewTokenAmount(perBlock),
		StartingBlock: start,
	}
}

func TestLockedAt(t *testing.T) {
	s := schedule(100, 10, 10)

	assert.Equal(t, abi.NewTokenAmount(100), s.LockedAt(0))
	assert.Equal(t, abi.NewTokenAmount(100), s.LockedAt(10))
	assert.Equal(t, abi.NewTokenAmount(90), s.LockedAt(11))
	assert.Equal(t, abi.NewTokenAmount(50), s.LockedAt(15))
	assert.Equal(t, abi.NewTokenAmount(0), s.LockedAt(20))

	// Never negative, no matter how far past the end.
	assert.Equal(t, abi.NewTokenAmount(0), s.LockedAt(1000))

	// A curve that releases its final tranche exactly at the ending block.
	s = schedule(1280, 128, 0)
	assert.Equal(t, abi.NewTokenAmount(1280), s.LockedAt(0))
	assert.Equal(t, abi.NewTokenAmount(128), s.LockedAt(9))
	assert.Equal(t, abi.NewTokenAmount(0), s.LockedAt(10))
	ending, err := s.EndingBlock()
	require.NoError(t, err)
	assert.Equal(t, abi.ChainEpoch(10), ending)
}

func TestEndingBlock(t *testing.T) {
	t.Run("exact division", func(t *testing.T) {
		ending, err := schedule(100, 10, 10).EndingBlock()
		require.NoError(t, err)
		assert.Equal(t, abi.ChainEpoch(20), ending)
	})

	t.Run("a final partial block counts", func(t *testing.T) {
		ending, err := schedule(101, 10, 10).EndingBlock()
		require.NoError(t, err)
		assert.Equal(t, abi.ChainEpoch(21), ending)
	})

	t.Run("a zero rate is read as one", func(t *testing.T) {
		ending, err := schedule(5, 0, 0).EndingBlock()
		require.NoError(t, err)
		assert.Equal(t, abi.ChainEpoch(5), ending)
	})

	t.Run("overflowing the epoch domain fails", func(t *testing.T) {
		s := VestingSchedule{
			Locked:        big.Lsh(big.NewInt(1), 70),
			PerBlock:      abi.NewTokenAmount(1),
			StartingBlock: 0,
		}
		_, err := s.EndingBlock()
		require.Error(t, err)
	})
}

func TestValidateParams(t *testing.T) {
	assert.NoError(t, schedule(100, 10, 0).ValidateParams())
	assert.Error(t, schedule(0, 10, 0).ValidateParams())
	assert.Error(t, schedule(100, 0, 0).ValidateParams())
	assert.Error(t, schedule(-1, 10, 0).ValidateParams())
	assert.Error(t, schedule(100, -1, 0).ValidateParams())
}

func TestCorrect(t *testing.T) {
	// A rate above the total is clamped so the schedule lasts a full block.
	corrected := schedule(10, 100, 7).Correct()
	assert.Equal(t, schedule(10, 10, 7), corrected)

	// A rate within the total is untouched.
	assert.Equal(t, schedule(100, 10, 7), schedule(100, 10, 7).Correct())
}

func TestReportScheduleUpdates(t *testing.T) {
	a := schedule(100, 10, 0)  // ends at 10
	b := schedule(50, 10, 0)   // ends at 5
	c := schedule(200, 10, 20) // ends at 40

	t.Run("passive pass drops completed schedules", func(t *testing.T) {
		surviving, locked := reportScheduleUpdates([]VestingSchedule{a, b, c}, 6, passiveAction{})
		assert.Equal(t, []VestingSchedule{a, c}, surviving)
		// a has 40 left, c is untouched.
		assert.Equal(t, abi.NewTokenAmount(240), locked)
	})

	t.Run("passive pass before any vesting keeps everything", func(t *testing.T) {
		surviving, locked := reportScheduleUpdates([]VestingSchedule{a, b, c}, 0, passiveAction{})
		assert.Equal(t, []VestingSchedule{a, b, c}, surviving)
		assert.Equal(t, abi.NewTokenAmount(350), locked)
	})

	t.Run("remove drops an active schedule and its locked amount", func(t *testing.T) {
		surviving, locked := reportScheduleUpdates([]VestingSchedule{a, c}, 6, removeAction{index: 0})
		assert.Equal(t, []VestingSchedule{c}, surviving)
		assert.Equal(t, abi.NewTokenAmount(200), locked)
	})

	t.Run("merge drops both selected schedules", func(t *testing.T) {
		surviving, locked := reportScheduleUpdates([]VestingSchedule{a, b, c}, 0, mergeAction{index1: 0, index2: 2})
		assert.Equal(t, []VestingSchedule{b}, surviving)
		assert.Equal(t, abi.NewTokenAmount(50), locked)
	})

	t.Run("everything completed leaves nothing", func(t *testing.T) {
		surviving, locked := reportScheduleUpdates([]VestingSchedule{a, b}, 100, passiveAction{})
		assert.Empty(t, surviving)
		assert.Equal(t, abi.NewTokenAmount(0), locked)
	})
}

type testLogger struct {
	t *testing.T
}

func (l testLogger) Log(_ rtt.LogLevel, msg string, args ...interface{}) {
	l.t.Logf(msg, args...)
}

func TestMergeVestingSchedules(t *testing.T) {
	logger := testLogger{t}

	t.Run("both ended leaves no replacement", func(t *testing.T) {
		merged, err := mergeVestingSchedules(logger, 50, schedule(100, 10, 0), schedule(50, 10, 0))
		require.NoError(t, err)
		assert.Nil(t, merged)
	})

	t.Run("one ended leaves the other unmodified", func(t *testing.T) {
		ended := schedule(50, 10, 0) // ends at 5
		open := schedule(60, 2, 0)   // ends at 30
		merged, err := mergeVestingSchedules(logger, 15, ended, open)
		require.NoError(t, err)
		require.NotNil(t, merged)
		assert.Equal(t, open, *merged)

		// Argument order does not matter.
		merged, err = mergeVestingSchedules(logger, 15, open, ended)
		require.NoError(t, err)
		require.NotNil(t, merged)
		assert.Equal(t, open, *merged)
	})

	t.Run("two active schedules merge into one", func(t *testing.T) {
		s1 := schedule(100, 10, 0) // ends at 10
		s2 := schedule(50, 5, 5)   // ends at 15
		merged, err := mergeVestingSchedules(logger, 5, s1, s2)
		require.NoError(t, err)
		require.NotNil(t, merged)

		// s1 has 50 left at epoch 5 and s2 is untouched; the replacement runs
		// from the latest start to the latest end.
		assert.Equal(t, schedule(100, 10, 5), *merged)
		ending, err := merged.EndingBlock()
		require.NoError(t, err)
		assert.Equal(t, abi.ChainEpoch(15), ending)
	})

	t.Run("merging a duplicated schedule doubles the amount over the same span", func(t *testing.T) {
		s := schedule(1280, 64, 10) // ends at 30
		merged, err := mergeVestingSchedules(logger, 10, s, s)
		require.NoError(t, err)
		require.NotNil(t, merged)
		assert.Equal(t, schedule(2560, 128, 10), *merged)
	})

	t.Run("merging before either starts keeps the full amounts", func(t *testing.T) {
		s1 := schedule(100, 10, 10) // ends at 20
		s2 := schedule(60, 10, 14)  // ends at 20
		merged, err := mergeVestingSchedules(logger, 0, s1, s2)
		require.NoError(t, err)
		require.NotNil(t, merged)

		// Start is the later of the two starts; duration 6 over 160 locked.
		assert.Equal(t, VestingSchedule{
			Locked:        abi.NewTokenAmount(160),
			PerBlock:      abi.NewTokenAmount(26),
			StartingBlock: 14,
		}, *merged)

		// Rounding the rate down stretches the final block past the inputs.
		ending, err := merged.EndingBlock()
		require.NoError(t, err)
		assert.Equal(t, abi.ChainEpoch(21), ending)
	})

	t.Run("an ending block overflow is reported", func(t *testing.T) {
		huge := VestingSchedule{
			Locked:        big.Lsh(big.NewInt(1), 70),
			PerBlock:      abi.NewTokenAmount(1),
			StartingBlock: 0,
		}
		_, err := mergeVestingSchedules(logger, 0, huge, schedule(100, 10, 0))
		require.Error(t, err)
	})
}

func TestScheduleStore(t *testing.T) {
	alice := tutil.NewIDAddr(t, 101)

	newState := func(t *testing.T, store adt.Store, maxSchedules uint64) *State {
		emptyMap, err := adt.MakeEmptyMap(store)
		require.NoError(t, err)
		return ConstructState(emptyMap.Root(), maxSchedules, abi.NewTokenAmount(0), DefaultLockID)
	}

	t.Run("write, load and delete", func(t *testing.T) {
		store := ipld.NewADTStore(context.Background())
		st := newState(t, store, 28)

		_, found, err := st.LoadSchedules(store, alice)
		require.NoError(t, err)
		assert.False(t, found)

		set := []VestingSchedule{schedule(100, 10, 0), schedule(50, 5, 5)}
		require.NoError(t, st.WriteSchedules(store, alice, set))

		loaded, found, err := st.LoadSchedules(store, alice)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, set, loaded)

		count, err := st.ScheduleCount(store, alice)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)

		// Writing an empty set removes the entry.
		require.NoError(t, st.WriteSchedules(store, alice, nil))
		_, found, err = st.LoadSchedules(store, alice)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("write past the bound is refused", func(t *testing.T) {
		store := ipld.NewADTStore(context.Background())
		st := newState(t, store, 1)

		err := st.WriteSchedules(store, alice, []VestingSchedule{schedule(100, 10, 0), schedule(50, 5, 5)})
		assert.Equal(t, errSchedulesAtMax, err)
	})

	t.Run("vesting balance is capped by the free balance", func(t *testing.T) {
		store := ipld.NewADTStore(context.Background())
		st := newState(t, store, 28)

		require.NoError(t, st.WriteSchedules(store, alice, []VestingSchedule{schedule(100, 10, 0)}))

		balance, vesting, err := st.VestingBalance(store, alice, 5, abi.NewTokenAmount(1000))
		require.NoError(t, err)
		assert.True(t, vesting)
		assert.Equal(t, abi.NewTokenAmount(50), balance)

		balance, vesting, err = st.VestingBalance(store, alice, 5, abi.NewTokenAmount(30))
		require.NoError(t, err)
		assert.True(t, vesting)
		assert.Equal(t, abi.NewTokenAmount(30), balance)

		// A missing account reads as not vesting at all.
		bob := tutil.NewIDAddr(t, 102)
		balance, vesting, err = st.VestingBalance(store, bob, 5, abi.NewTokenAmount(1000))
		require.NoError(t, err)
		assert.False(t, vesting)
		assert.Equal(t, abi.NewTokenAmount(0), balance)
	})
}
