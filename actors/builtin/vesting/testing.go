package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	builtin "github.com/vestlock/vesting-actors/actors/builtin"
	adt "github.com/vestlock/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	AccountCount    uint64
	ScheduleCount   uint64
	TotalLocked     abi.TokenAmount
	LockedByAccount map[addr.Address]abi.TokenAmount
}

// Checks internal invariants of vesting actor state.
func CheckStateInvariants(st *State, store adt.Store, now abi.ChainEpoch) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}

	acc.Require(st.MaxVestingSchedules > 0, "max vesting schedules is zero")
	acc.Require(st.MinVestedTransfer.GreaterThanEqual(big.Zero()), "min vested transfer %v is negative", st.MinVestedTransfer)
	acc.Require(st.LockID != "", "lock identifier is empty")

	summary := &StateSummary{
		TotalLocked:     big.Zero(),
		LockedByAccount: map[addr.Address]abi.TokenAmount{},
	}

	schedules := adt.AsMap(store, st.Schedules)
	var list ScheduleList
	err := schedules.ForEach(&list, func(key string) error {
		who, err := addr.NewFromBytes([]byte(key))
		acc.RequireNoError(err, "schedule key is not an address")
		if err != nil {
			return nil
		}
		accountAcc := acc.WithPrefix("account %v: ", who)

		accountAcc.Require(len(list.Schedules) > 0, "empty schedule list should have been deleted")
		accountAcc.Require(uint64(len(list.Schedules)) <= st.MaxVestingSchedules,
			"%d schedules exceeds the maximum of %d", len(list.Schedules), st.MaxVestingSchedules)

		lockedNow := big.Zero()
		for i, schedule := range list.Schedules {
			scheduleAcc := accountAcc.WithPrefix("schedule %d: ", i)
			scheduleAcc.Require(schedule.Locked.GreaterThan(big.Zero()), "locked amount %v is not positive", schedule.Locked)
			scheduleAcc.Require(schedule.PerBlock.GreaterThan(big.Zero()), "per-block amount %v is not positive", schedule.PerBlock)
			scheduleAcc.Require(schedule.PerBlock.LessThanEqual(schedule.Locked),
				"per-block amount %v exceeds locked amount %v", schedule.PerBlock, schedule.Locked)

			ending, err := schedule.EndingBlock()
			scheduleAcc.RequireNoError(err, "ending block overflows")
			if err == nil {
				scheduleAcc.Require(ending > schedule.StartingBlock, "ending block %d does not follow starting block %d", ending, schedule.StartingBlock)
			}

			lockedNow = big.Add(lockedNow, schedule.LockedAt(now))
			summary.ScheduleCount++
		}
		summary.AccountCount++
		summary.TotalLocked = big.Add(summary.TotalLocked, lockedNow)
		summary.LockedByAccount[who] = lockedNow
		return nil
	})
	acc.RequireNoError(err, "error iterating schedules")

	return summary, acc
}
