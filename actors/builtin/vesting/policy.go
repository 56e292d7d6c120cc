package vesting

import (
	"github.com/filecoin-project/go-state-types/exitcode"

	vmr "github.com/vestlock/vesting-actors/actors/runtime"
)

// DefaultLockID is the balance lock identifier used when the constructor is
// given an empty one.
const DefaultLockID = vmr.LockID("vesting ")

// DefaultMaxVestingSchedules bounds the schedule set of a single account when
// the constructor does not override it. Merging existing schedules frees
// capacity for new ones.
const DefaultMaxVestingSchedules = uint64(28)

// LockReasons are attached to the vesting lock: unvested funds may still pay
// fees but can be neither transferred nor reserved.
const LockReasons = vmr.WithdrawTransfer | vmr.WithdrawReserve

// Actor-specific exit codes begin at 32; everything below is reserved for the
// common runtime codes.
const (
	// The account is not vesting.
	ErrNotVesting = exitcode.ExitCode(32 + iota)
	// The account already has the maximum number of schedules; merging
	// existing schedules may free capacity for another one.
	ErrAtMaxSchedules
	// Amount being transferred is too low to create a vesting schedule.
	ErrAmountLow
	// A schedule's parameters were invalid, e.g. a locked amount of zero.
	ErrInvalidScheduleParams
	// A time/amount computation exceeded the epoch domain's maximum value.
	ErrArithmeticOverflow
	// A caller-supplied index is not a valid position in the current schedule set.
	ErrScheduleIndexOutOfBounds
)
