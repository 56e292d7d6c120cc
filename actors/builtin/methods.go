package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type vestingMethods struct {
	Constructor         abi.MethodNum
	Vest                abi.MethodNum
	VestOther           abi.MethodNum
	VestedTransfer      abi.MethodNum
	ForceVestedTransfer abi.MethodNum
	AddVestingSchedule  abi.MethodNum
	RemoveSchedule      abi.MethodNum
	MergeSchedules      abi.MethodNum
	BalanceLocked       abi.MethodNum
}

var MethodsVesting = vestingMethods{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9}
