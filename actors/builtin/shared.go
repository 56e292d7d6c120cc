package builtin

import (
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/vestlock/vesting-actors/actors/runtime"
)

///// Code shared by multiple built-in actors. /////

// RequireSuccess propagates a failed send by aborting the current method with
// the same exit code.
func RequireSuccess(rt runtime.Runtime, e exitcode.ExitCode, msg string, args ...interface{}) {
	if !e.IsSuccess() {
		rt.Abortf(e, msg, args...)
	}
}

// RequireNoErr aborts with the given default exit code when err is non-nil.
func RequireNoErr(rt runtime.Runtime, err error, defaultExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	if err != nil {
		args = append(args, err)
		rt.Abortf(defaultExitCode, msg+": %v", args...)
	}
}
