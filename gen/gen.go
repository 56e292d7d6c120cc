package main

import (
	vesting "github.com/vestlock/vesting-actors/actors/builtin/vesting"

	gen "github.com/whyrusleeping/cbor-gen"
)

func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.VestingSchedule{},
		vesting.ScheduleList{},
		// method params
		vesting.ConstructorParams{},
		vesting.GenesisVestingEntry{},
		vesting.AccountParams{},
		vesting.VestedTransferParams{},
		vesting.ForceVestedTransferParams{},
		vesting.AddVestingScheduleParams{},
		vesting.RemoveScheduleParams{},
		vesting.MergeSchedulesParams{},
		// method returns
		vesting.BalanceLockedReturn{},
		// events
		vesting.VestingUpdatedEvent{},
		vesting.VestingCompletedEvent{},
		vesting.MergedScheduleAddedEvent{},
	); err != nil {
		panic(err)
	}
}
