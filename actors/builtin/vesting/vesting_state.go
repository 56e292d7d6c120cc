package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	errors "github.com/pkg/errors"
	"golang.org/x/xerrors"

	vmr "github.com/vestlock/vesting-actors/actors/runtime"
	adt "github.com/vestlock/vesting-actors/actors/util/adt"
)

// State is the vesting actor's persistent root object.
type State struct {
	// Maximum number of vesting schedules an account may have at a given moment.
	MaxVestingSchedules uint64

	// The minimum amount transferred to call VestedTransfer.
	MinVestedTransfer abi.TokenAmount

	// Identifier of the balance lock maintained for unvested funds.
	LockID string

	// Vesting schedules per account.
	// An account with no entry is not vesting; entries are never empty.
	Schedules cid.Cid // Map, HAMT[Address]ScheduleList
}

// VestingSchedule is a single linear unlock curve: `Locked` tokens become
// spendable at `PerBlock` tokens per epoch from `StartingBlock` onwards.
// Schedules are copied by value and never mutated in place.
type VestingSchedule struct {
	Locked        abi.TokenAmount
	PerBlock      abi.TokenAmount
	StartingBlock abi.ChainEpoch
}

// ScheduleList is the insertion-ordered schedule set of one account, bounded
// by State.MaxVestingSchedules at write time.
type ScheduleList struct {
	Schedules []VestingSchedule
}

func ConstructState(emptySchedulesCid cid.Cid, maxVestingSchedules uint64, minVestedTransfer abi.TokenAmount, lockID vmr.LockID) *State {
	return &State{
		MaxVestingSchedules: maxVestingSchedules,
		MinVestedTransfer:   minVestedTransfer,
		LockID:              string(lockID),
		Schedules:           emptySchedulesCid,
	}
}

//
// Schedule math
//

// LockedAt returns the amount of this schedule still locked at the given
// epoch: the full amount at or before the starting block, linearly less
// afterwards, and never below zero.
func (s VestingSchedule) LockedAt(now abi.ChainEpoch) abi.TokenAmount {
	if now <= s.StartingBlock {
		return s.Locked
	}
	elapsed := epochToAmount(now - s.StartingBlock)
	unlocked := big.Mul(s.PerBlock, elapsed)
	return big.Max(big.Zero(), big.Sub(s.Locked, unlocked))
}

// EndingBlock returns the first epoch at which LockedAt reaches zero.
// A stored per-block rate of zero is treated as one so that degenerate
// schedules still finish. Fails when the result exceeds the epoch domain.
func (s VestingSchedule) EndingBlock() (abi.ChainEpoch, error) {
	perBlock := big.Max(s.PerBlock, big.NewInt(1))
	// Round up: a final partial block still counts.
	duration := big.Div(big.Add(s.Locked, big.Sub(perBlock, big.NewInt(1))), perBlock)
	ending := big.Add(epochToAmount(s.StartingBlock), duration)
	if !ending.Int.IsInt64() {
		return 0, xerrors.Errorf("schedule ending block exceeds the epoch maximum")
	}
	return abi.ChainEpoch(ending.Int.Int64()), nil
}

// ValidateParams rejects schedules that could never vest to completion.
// Minimum-transfer policy is the caller's concern, not checked here.
func (s VestingSchedule) ValidateParams() error {
	if s.Locked.LessThanEqual(big.Zero()) || s.PerBlock.LessThanEqual(big.Zero()) {
		return xerrors.Errorf("locked and per-block amounts must be positive")
	}
	return nil
}

// Correct clamps the per-block rate to the locked amount, so a schedule never
// unlocks more than its total in a single epoch and never finishes before
// StartingBlock+1.
func (s VestingSchedule) Correct() VestingSchedule {
	return VestingSchedule{
		Locked:        s.Locked,
		PerBlock:      big.Min(s.PerBlock, s.Locked),
		StartingBlock: s.StartingBlock,
	}
}

// epochToAmount converts an epoch to the amount domain.
// Injective and order-preserving.
func epochToAmount(e abi.ChainEpoch) big.Int {
	return big.NewInt(int64(e))
}

func maxEpoch(a abi.ChainEpoch, rest ...abi.ChainEpoch) abi.ChainEpoch {
	out := a
	for _, e := range rest {
		if e > out {
			out = e
		}
	}
	return out
}

//
// Schedule set maintenance
//

// vestingAction selects schedules for removal during a recompute pass.
type vestingAction interface {
	shouldRemove(index int) bool
}

// passiveAction does not actively remove any schedule.
type passiveAction struct{}

func (passiveAction) shouldRemove(int) bool { return false }

// removeAction removes the schedule at one index.
type removeAction struct {
	index int
}

func (a removeAction) shouldRemove(i int) bool { return i == a.index }

// mergeAction removes two schedules by index so they can be merged.
type mergeAction struct {
	index1 int
	index2 int
}

func (a mergeAction) shouldRemove(i int) bool { return i == a.index1 || i == a.index2 }

// reportScheduleUpdates filters out completed schedules and those selected by
// the action, preserving relative order, and totals LockedAt(now) over the
// survivors only. Every mutation passes through here, which is what keeps the
// declared lock equal to the sum over surviving schedules.
func reportScheduleUpdates(schedules []VestingSchedule, now abi.ChainEpoch, action vestingAction) ([]VestingSchedule, abi.TokenAmount) {
	totalLockedNow := big.Zero()
	var surviving []VestingSchedule
	for i, schedule := range schedules {
		lockedNow := schedule.LockedAt(now)
		if lockedNow.IsZero() || action.shouldRemove(i) {
			continue
		}
		totalLockedNow = big.Add(totalLockedNow, lockedNow)
		surviving = append(surviving, schedule)
	}
	return surviving, totalLockedNow
}

// mergeVestingSchedules combines two schedules into at most one replacement.
// A schedule that has ended by `now` contributes nothing: if both have ended
// there is no replacement, and if exactly one has ended the other survives
// unmodified (it is NOT re-based to `now`; its already-releasable funds are
// accounted for by the separate recompute pass).
//
// When both are still active the replacement locks the sum of both schedules'
// LockedAt(now), starts at the latest of `now` and both starting blocks, and
// ends at the later of the two ending blocks.
func mergeVestingSchedules(logger vmr.Logger, now abi.ChainEpoch, schedule1, schedule2 VestingSchedule) (*VestingSchedule, error) {
	ending1, err := schedule1.EndingBlock()
	if err != nil {
		return nil, err
	}
	ending2, err := schedule2.EndingBlock()
	if err != nil {
		return nil, err
	}

	switch {
	case ending1 <= now && ending2 <= now:
		return nil, nil
	case ending1 <= now:
		return &schedule2, nil
	case ending2 <= now:
		return &schedule1, nil
	}

	locked := big.Add(schedule1.LockedAt(now), schedule2.LockedAt(now))
	if locked.IsZero() {
		// Shouldn't happen: at least one ending block is greater than now.
		logger.Log(rtt.WARN, "vesting merge computed zero locked for two unfinished schedules")
		return nil, nil
	}

	endingBlock := maxEpoch(ending1, ending2)
	startingBlock := maxEpoch(now, schedule1.StartingBlock, schedule2.StartingBlock)
	duration := epochToAmount(endingBlock - startingBlock)

	var perBlock abi.TokenAmount
	if duration.GreaterThan(locked) {
		// A whole-number rate below one cannot be represented; clamp to the
		// minimum and let the schedule finish early.
		perBlock = big.NewInt(1)
	} else if duration.IsZero() {
		// Unreachable: every schedule ends at least one block after it starts.
		perBlock = locked
	} else {
		perBlock = big.Div(locked, duration)
	}

	merged := VestingSchedule{Locked: locked, PerBlock: perBlock, StartingBlock: startingBlock}.Correct()
	return &merged, nil
}

//
// Schedule store
//

// Sentinel for writes that would exceed the schedule bound; distinguishes the
// internal-consistency fault from ordinary store failures.
var errSchedulesAtMax = xerrors.New("too many vesting schedules")

// LoadSchedules fetches the schedule set for an account, if any.
func (st *State) LoadSchedules(store adt.Store, who addr.Address) ([]VestingSchedule, bool, error) {
	schedules := adt.AsMap(store, st.Schedules)
	var list ScheduleList
	found, err := schedules.Get(adt.AddrKey(who), &list)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to load vesting schedules for %v", who)
	}
	if !found {
		return nil, false, nil
	}
	return list.Schedules, true, nil
}

// ScheduleCount returns the number of schedules an account currently holds.
func (st *State) ScheduleCount(store adt.Store, who addr.Address) (uint64, error) {
	schedules, _, err := st.LoadSchedules(store, who)
	if err != nil {
		return 0, err
	}
	return uint64(len(schedules)), nil
}

// WriteSchedules stores an account's schedule set, deleting the account's
// entry entirely when the set is empty. An empty set is never persisted.
func (st *State) WriteSchedules(store adt.Store, who addr.Address, schedules []VestingSchedule) error {
	if uint64(len(schedules)) > st.MaxVestingSchedules {
		return errSchedulesAtMax
	}
	m := adt.AsMap(store, st.Schedules)
	if len(schedules) == 0 {
		if err := m.Delete(adt.AddrKey(who)); err != nil {
			return errors.Wrapf(err, "failed to delete vesting schedules for %v", who)
		}
	} else {
		if err := m.Put(adt.AddrKey(who), &ScheduleList{Schedules: schedules}); err != nil {
			return errors.Wrapf(err, "failed to store vesting schedules for %v", who)
		}
	}
	st.Schedules = m.Root()
	return nil
}

// VestingBalance returns the total still-locked amount for an account at the
// given epoch, capped by its free balance (a lock cannot exceed what the
// account actually holds). The second return is false when the account is not
// vesting. Read-only; nothing is persisted.
func (st *State) VestingBalance(store adt.Store, who addr.Address, now abi.ChainEpoch, freeBalance abi.TokenAmount) (abi.TokenAmount, bool, error) {
	schedules, found, err := st.LoadSchedules(store, who)
	if err != nil || !found {
		return big.Zero(), false, err
	}
	totalLockedNow := big.Zero()
	for _, schedule := range schedules {
		totalLockedNow = big.Add(totalLockedNow, schedule.LockedAt(now))
	}
	return big.Min(freeBalance, totalLockedNow), true, nil
}
