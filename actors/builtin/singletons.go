package builtin

import (
	addr "github.com/filecoin-project/go-address"

	autil "github.com/vestlock/vesting-actors/actors/util"
)

// Addresses for singleton actors, defined in the host's address space.
var (
	SystemActorAddr  = mustMakeAddress(0)
	VestingActorAddr = mustMakeAddress(6)
)

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	autil.AssertNoError(err)
	return address
}
