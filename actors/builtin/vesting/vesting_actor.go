package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"

	builtin "github.com/vestlock/vesting-actors/actors/builtin"
	vmr "github.com/vestlock/vesting-actors/actors/runtime"
	adt "github.com/vestlock/vesting-actors/actors/util/adt"
)

// The vesting actor places linear unlock curves on accounts' locked balances
// and keeps a single enforced balance lock per account in sync with the total
// amount still unvested. Locks only shrink when explicitly prompted: calling
// Vest (or any other mutating method) recomputes the schedule set at the
// current epoch and rewrites the lock.
//
// Schedules are addressed by position in the account's current set. Merging
// appends the replacement schedule at the end, so indices are only valid
// relative to the immediately preceding read.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Vest,
		3:                         a.VestOther,
		4:                         a.VestedTransfer,
		5:                         a.ForceVestedTransfer,
		6:                         a.AddVestingSchedule,
		7:                         a.RemoveSchedule,
		8:                         a.MergeSchedules,
		9:                         a.BalanceLocked,
	}
}

var _ vmr.Invokee = Actor{}

//
// Events
//

// VestingUpdatedEvent signals that the amount vested has been updated. The
// balance given is the amount left unvested (and thus still locked).
type VestingUpdatedEvent struct {
	Account  addr.Address
	Unvested abi.TokenAmount
}

// VestingCompletedEvent signals that an account has become fully vested.
type VestingCompletedEvent struct {
	Account addr.Address
}

// MergedScheduleAddedEvent signals that two schedules were merged and the
// replacement schedule was added.
type MergedScheduleAddedEvent struct {
	Locked        abi.TokenAmount
	PerBlock      abi.TokenAmount
	StartingBlock abi.ChainEpoch
}

//
// Actor methods
//

type GenesisVestingEntry struct {
	// Account the vesting configuration is generated for.
	Account addr.Address
	// Epoch at which the account starts to vest.
	Begin abi.ChainEpoch
	// Number of epochs from Begin until fully vested.
	Length abi.ChainEpoch
	// Number of units which can be spent before vesting begins.
	Liquid abi.TokenAmount
}

type ConstructorParams struct {
	MaxVestingSchedules uint64
	MinVestedTransfer   abi.TokenAmount
	LockID              string
	Vesting             []GenesisVestingEntry
}

// Constructor initializes the actor state and applies the genesis vesting
// configuration. Genesis runs before any operation has touched the accounts,
// so locks are set directly without a recompute pass. Misconfiguration aborts:
// these are startup errors, the host must not come up with them.
func (a Actor) Constructor(rt vmr.Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	maxSchedules := params.MaxVestingSchedules
	if maxSchedules == 0 {
		maxSchedules = DefaultMaxVestingSchedules
	}
	minTransfer := params.MinVestedTransfer
	if minTransfer.Nil() {
		minTransfer = big.Zero()
	}
	lockID := vmr.LockID(params.LockID)
	if lockID == "" {
		lockID = DefaultLockID
	}

	emptyMap, err := adt.MakeEmptyMap(adt.AsStore(rt))
	if err != nil {
		rt.Abortf(exitcode.ErrIllegalState, "failed to create vesting actor state: %v", err)
	}
	st := ConstructState(emptyMap.Root(), maxSchedules, minTransfer, lockID)

	schedules := adt.AsMap(adt.AsStore(rt), st.Schedules)
	for _, entry := range params.Vesting {
		balance := rt.BalanceOf(entry.Account)
		if balance.IsZero() {
			rt.Abortf(exitcode.ErrIllegalState, "genesis vesting for %v requires an initialized balance", entry.Account)
		}
		// Total genesis balance minus the liquid portion is locked for vesting.
		locked := big.Max(big.Zero(), big.Sub(balance, entry.Liquid))
		length := big.Max(epochToAmount(entry.Length), big.NewInt(1))
		schedule := VestingSchedule{
			Locked:        locked,
			PerBlock:      big.Div(locked, length),
			StartingBlock: entry.Begin,
		}
		if err := schedule.ValidateParams(); err != nil {
			rt.Abortf(ErrInvalidScheduleParams, "invalid genesis vesting for %v: %v", entry.Account, err)
		}

		var list ScheduleList
		if _, err := schedules.Get(adt.AddrKey(entry.Account), &list); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to load genesis vesting for %v: %v", entry.Account, err)
		}
		if uint64(len(list.Schedules)) >= maxSchedules {
			rt.Abortf(ErrAtMaxSchedules, "too many genesis vesting schedules for %v", entry.Account)
		}
		list.Schedules = append(list.Schedules, schedule)
		if err := schedules.Put(adt.AddrKey(entry.Account), &list); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to store genesis vesting for %v: %v", entry.Account, err)
		}
		rt.SetBalanceLock(lockID, entry.Account, locked, LockReasons)
	}
	st.Schedules = schedules.Root()

	rt.State().Create(st)
	return nil
}

// Vest unlocks any vested funds of the caller, reducing the balance lock in
// line with the amount vested so far.
//
// Emits either VestingCompleted or VestingUpdated.
func (a Actor) Vest(rt vmr.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	a.vest(rt, rt.Message().Caller())
	return nil
}

type AccountParams struct {
	Account addr.Address
}

// VestOther unlocks any vested funds of a target account. The target must
// have funds still locked under this actor.
//
// Emits either VestingCompleted or VestingUpdated.
func (a Actor) VestOther(rt vmr.Runtime, params *AccountParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	a.vest(rt, params.Account)
	return nil
}

type VestedTransferParams struct {
	Target   addr.Address
	Schedule VestingSchedule
}

// VestedTransfer creates a vesting schedule on a target account, funded by a
// transfer of the schedule's locked amount from the caller.
func (a Actor) VestedTransfer(rt vmr.Runtime, params *VestedTransferParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	a.vestedTransfer(rt, rt.Message().Caller(), params.Target, params.Schedule)
	return nil
}

type ForceVestedTransferParams struct {
	Source   addr.Address
	Target   addr.Address
	Schedule VestingSchedule
}

// ForceVestedTransfer is VestedTransfer with an explicit source account.
// Only the system actor may call it.
func (a Actor) ForceVestedTransfer(rt vmr.Runtime, params *ForceVestedTransferParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)
	a.vestedTransfer(rt, params.Source, params.Target, params.Schedule)
	return nil
}

type AddVestingScheduleParams struct {
	Account  addr.Address
	Schedule VestingSchedule
}

// AddVestingSchedule places a schedule on an account without moving any
// value; the locked funds must already be in place.
//
// A no-op if the amount to be vested is zero.
func (a Actor) AddVestingSchedule(rt vmr.Runtime, params *AddVestingScheduleParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)
	if params.Schedule.Locked.IsZero() {
		return nil
	}
	if err := params.Schedule.ValidateParams(); err != nil {
		rt.Abortf(ErrInvalidScheduleParams, "invalid vesting schedule: %v", err)
	}

	now := rt.CurrEpoch()
	var st State
	var lockID vmr.LockID
	var lockedNow abi.TokenAmount
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		schedules, _, err := st.LoadSchedules(store, params.Account)
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to load vesting schedules for %v: %v", params.Account, err)
		}
		if uint64(len(schedules)) >= st.MaxVestingSchedules {
			rt.Abortf(ErrAtMaxSchedules, "account %v is at the maximum of %d vesting schedules", params.Account, st.MaxVestingSchedules)
		}
		// The new schedule is appended before the recompute so it factors
		// into the new locked total.
		schedules = append(schedules, params.Schedule)
		surviving, locked := reportScheduleUpdates(schedules, now, passiveAction{})
		a.commitSchedules(rt, &st, params.Account, surviving)
		lockID = vmr.LockID(st.LockID)
		lockedNow = locked
		return nil
	})
	a.writeLock(rt, lockID, params.Account, lockedNow)
	return nil
}

type RemoveScheduleParams struct {
	Account       addr.Address
	ScheduleIndex uint64
}

// RemoveSchedule drops the schedule at the given index from an account's set,
// releasing whatever it still had locked. Only the system actor may call it.
func (a Actor) RemoveSchedule(rt vmr.Runtime, params *RemoveScheduleParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	now := rt.CurrEpoch()
	var st State
	var lockID vmr.LockID
	var lockedNow abi.TokenAmount
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		schedules, found, err := st.LoadSchedules(store, params.Account)
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to load vesting schedules for %v: %v", params.Account, err)
		}
		if !found {
			rt.Abortf(ErrNotVesting, "account %v is not vesting", params.Account)
		}
		if params.ScheduleIndex >= uint64(len(schedules)) {
			rt.Abortf(ErrScheduleIndexOutOfBounds, "schedule index %d out of bounds for %d schedules", params.ScheduleIndex, len(schedules))
		}
		surviving, locked := reportScheduleUpdates(schedules, now, removeAction{index: int(params.ScheduleIndex)})
		a.commitSchedules(rt, &st, params.Account, surviving)
		lockID = vmr.LockID(st.LockID)
		lockedNow = locked
		return nil
	})
	a.writeLock(rt, lockID, params.Account, lockedNow)
	return nil
}

type MergeSchedulesParams struct {
	Schedule1Index uint64
	Schedule2Index uint64
}

// MergeSchedules merges two of the caller's schedules into one that unlocks
// over the highest possible start and end blocks, unlocking all schedules
// through the current epoch as it goes. If both schedules have ended, both
// are removed and no replacement is created; if exactly one has ended, the
// other becomes the merged schedule unmodified.
//
// The replacement is appended at the end of the surviving set: indices held
// from before the call are stale afterwards.
//
// A no-op if the two indices are equal.
func (a Actor) MergeSchedules(rt vmr.Runtime, params *MergeSchedulesParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	if params.Schedule1Index == params.Schedule2Index {
		return nil
	}
	who := rt.Message().Caller()
	now := rt.CurrEpoch()

	var st State
	var lockID vmr.LockID
	var lockedNow abi.TokenAmount
	var mergedEvent *MergedScheduleAddedEvent
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		schedules, found, err := st.LoadSchedules(store, who)
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to load vesting schedules for %v: %v", who, err)
		}
		if !found {
			rt.Abortf(ErrNotVesting, "account %v is not vesting", who)
		}

		// Indices address the schedule ordering prior to filtering out any
		// schedules that end at this epoch.
		index1, index2 := int(params.Schedule1Index), int(params.Schedule2Index)
		if index1 >= len(schedules) || index2 >= len(schedules) {
			rt.Abortf(ErrScheduleIndexOutOfBounds, "schedule indices %d, %d out of bounds for %d schedules", index1, index2, len(schedules))
		}
		schedule1, schedule2 := schedules[index1], schedules[index2]

		// Two schedules are filtered out here, so the merged replacement
		// below always has room.
		surviving, locked := reportScheduleUpdates(schedules, now, mergeAction{index1: index1, index2: index2})

		merged, err := mergeVestingSchedules(rt, now, schedule1, schedule2)
		if err != nil {
			rt.Abortf(ErrArithmeticOverflow, "failed to merge vesting schedules: %v", err)
		}
		if merged != nil {
			surviving = append(surviving, *merged)
			// LockedAt rather than Locked: the replacement may have started
			// in the past.
			locked = big.Add(locked, merged.LockedAt(now))
			mergedEvent = &MergedScheduleAddedEvent{
				Locked:        merged.Locked,
				PerBlock:      merged.PerBlock,
				StartingBlock: merged.StartingBlock,
			}
		}

		a.commitSchedules(rt, &st, who, surviving)
		lockID = vmr.LockID(st.LockID)
		lockedNow = locked
		return nil
	})

	if mergedEvent != nil {
		rt.Emit(mergedEvent)
	}
	a.writeLock(rt, lockID, who, lockedNow)
	return nil
}

type BalanceLockedReturn struct {
	// False when the account has no schedule set at all.
	Vesting bool
	// Total still locked across the account's schedules at the current epoch,
	// capped by the account's free balance.
	Balance abi.TokenAmount
}

// BalanceLocked reports the amount currently being vested for an account.
// A read-only projection; the persisted lock is not touched.
func (a Actor) BalanceLocked(rt vmr.Runtime, params *AccountParams) *BalanceLockedReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	balance, vesting, err := st.VestingBalance(adt.AsStore(rt), params.Account, rt.CurrEpoch(), rt.BalanceOf(params.Account))
	if err != nil {
		rt.Abortf(exitcode.ErrIllegalState, "failed to compute vesting balance for %v: %v", params.Account, err)
	}
	return &BalanceLockedReturn{Vesting: vesting, Balance: balance}
}

//
// Internals
//

// vest recomputes an account's schedule set at the current epoch, dropping
// completed schedules, and rewrites the balance lock to match.
func (a Actor) vest(rt vmr.Runtime, who addr.Address) {
	now := rt.CurrEpoch()
	var st State
	var lockID vmr.LockID
	var lockedNow abi.TokenAmount
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		schedules, found, err := st.LoadSchedules(store, who)
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to load vesting schedules for %v: %v", who, err)
		}
		if !found {
			rt.Abortf(ErrNotVesting, "account %v is not vesting", who)
		}
		surviving, locked := reportScheduleUpdates(schedules, now, passiveAction{})
		a.commitSchedules(rt, &st, who, surviving)
		lockID = vmr.LockID(st.LockID)
		lockedNow = locked
		return nil
	})
	a.writeLock(rt, lockID, who, lockedNow)
}

// vestedTransfer moves a schedule's locked amount from source to target and
// records the schedule on the target. The transfer is the point of no return:
// every precondition is checked before it, and a failure to record the
// schedule afterwards is an internal-consistency fault, not a caller error.
func (a Actor) vestedTransfer(rt vmr.Runtime, source, target addr.Address, schedule VestingSchedule) {
	var st State
	rt.State().Readonly(&st)

	if schedule.Locked.LessThanEqual(st.MinVestedTransfer) {
		rt.Abortf(ErrAmountLow, "vested transfer of %v does not exceed the minimum of %v", schedule.Locked, st.MinVestedTransfer)
	}
	if err := schedule.ValidateParams(); err != nil {
		rt.Abortf(ErrInvalidScheduleParams, "invalid vesting schedule: %v", err)
	}
	schedule = schedule.Correct()

	count, err := st.ScheduleCount(adt.AsStore(rt), target)
	if err != nil {
		rt.Abortf(exitcode.ErrIllegalState, "failed to count vesting schedules for %v: %v", target, err)
	}
	if count >= st.MaxVestingSchedules {
		rt.Abortf(ErrAtMaxSchedules, "account %v is at the maximum of %d vesting schedules", target, st.MaxVestingSchedules)
	}

	code := rt.Transfer(source, target, schedule.Locked, true)
	builtin.RequireSuccess(rt, code, "vested transfer of %v from %v to %v failed", schedule.Locked, source, target)

	now := rt.CurrEpoch()
	var lockID vmr.LockID
	var lockedNow abi.TokenAmount
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		schedules, _, err := st.LoadSchedules(store, target)
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to load vesting schedules for %v: %v", target, err)
		}
		schedules = append(schedules, schedule)
		surviving, locked := reportScheduleUpdates(schedules, now, passiveAction{})
		a.commitSchedules(rt, &st, target, surviving)
		lockID = vmr.LockID(st.LockID)
		lockedNow = locked
		return nil
	})
	a.writeLock(rt, lockID, target, lockedNow)
}

// commitSchedules persists an account's recomputed schedule set. A capacity
// overflow here means the preceding recompute was wrong; it is logged as an
// anomaly and surfaced as ErrAtMaxSchedules, leaving the set and the lock in
// agreement.
func (a Actor) commitSchedules(rt vmr.Runtime, st *State, who addr.Address, schedules []VestingSchedule) {
	err := st.WriteSchedules(adt.AsStore(rt), who, schedules)
	if err == errSchedulesAtMax {
		rt.Log(rtt.WARN, "faulty recompute produced too many vesting schedules for %v", who)
		rt.Abortf(ErrAtMaxSchedules, "account %v is limited to %d vesting schedules", who, st.MaxVestingSchedules)
	}
	if err != nil {
		rt.Abortf(exitcode.ErrIllegalState, "failed to write vesting schedules for %v: %v", who, err)
	}
}

// writeLock synchronizes the enforced balance lock with the recomputed total
// and signals the account's new vesting status. The schedule-set write and
// this lock write always happen together.
func (a Actor) writeLock(rt vmr.Runtime, id vmr.LockID, who addr.Address, totalLockedNow abi.TokenAmount) {
	if totalLockedNow.IsZero() {
		rt.RemoveBalanceLock(id, who)
		rt.Emit(&VestingCompletedEvent{Account: who})
	} else {
		rt.SetBalanceLock(id, who, totalLockedNow, LockReasons)
		rt.Emit(&VestingUpdatedEvent{Account: who, Unvested: totalLockedNow})
	}
}
