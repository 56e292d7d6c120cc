package runtime

import (
	"context"
	"io"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
)

// LockID names a balance lock held against an account's spendable funds.
// Locks with the same identifier overwrite each other; locks with different
// identifiers coexist.
type LockID string

// WithdrawReasons is a bit set restricting what a locked balance may still be
// used for. A lock prevents withdrawals for every reason it names.
type WithdrawReasons uint64

const (
	WithdrawTransfer WithdrawReasons = 1 << iota
	WithdrawReserve
	WithdrawFee
)

// Runtime is everything the host state-transition executor exposes to actor
// code, beyond method parameters. The host invokes operations serially and
// supplies the current epoch; actors perform no locking or I/O of their own.
type Runtime interface {
	// Information related to the current message being executed.
	Message() Message

	// The current chain epoch number. The genesis block has epoch zero.
	// Monotonically non-decreasing across calls within one execution.
	CurrEpoch() abi.ChainEpoch

	// Validates the caller against some predicate.
	// Exported actor methods must invoke exactly one caller validation before returning.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...addr.Address)
	ValidateImmediateCallerType(types ...cid.Cid)

	// The free (spendable, before locks) balance of an account.
	BalanceOf(who addr.Address) abi.TokenAmount

	// Provides a handle for the actor's state object.
	State() StateHandle

	Store() Store

	// Moves value between accounts. When allowDeath is set the source account
	// may be reaped if its balance drops below the existential minimum.
	// A failed transfer moves nothing and reports a non-ok exit code.
	Transfer(from, to addr.Address, amount abi.TokenAmount, allowDeath bool) exitcode.ExitCode

	// Maintains a named hold on an account's spendable balance. Setting a lock
	// that already exists replaces its amount and reasons; both calls are
	// idempotent. The lock mechanism knows nothing about schedules.
	SetBalanceLock(id LockID, who addr.Address, amount abi.TokenAmount, reasons WithdrawReasons)
	RemoveBalanceLock(id LockID, who addr.Address)

	// Emits a notification to the host. Fire-and-forget; no acknowledgement.
	Emit(evt CBORMarshaler)

	// Log allows actor code to record anomalies with the host's logger.
	Log(level rtt.LogLevel, msg string, args ...interface{})

	// Halts execution upon an error from which the receiver cannot recover.
	// The caller will receive the exit code and an empty return value. State
	// changes made within this call will be rolled back.
	// This method does not return.
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	// Provides a Go context for use by the HAMT, etc.
	Context() context.Context
}

// Logger is the logging facet of Runtime, for code that needs to report
// anomalies but nothing else from the runtime.
type Logger interface {
	Log(level rtt.LogLevel, msg string, args ...interface{})
}

// Store defines the storage module exposed to actors.
type Store interface {
	// Retrieves and deserializes an object from the store into `o`. Returns whether successful.
	Get(c cid.Cid, o CBORUnmarshaler) bool
	// Serializes and stores an object, returning its CID.
	Put(x CBORMarshaler) cid.Cid
}

// Message contains information available to the actor about the executing message.
type Message interface {
	// The address of the immediate calling actor. Always an ID-address.
	Caller() addr.Address

	// The address of the actor receiving the message. Always an ID-address.
	Receiver() addr.Address
}

// StateHandle provides mutable, exclusive access to actor state.
type StateHandle interface {
	// Create initializes the state object.
	// This is only valid in a constructor function and when the state has not yet been initialized.
	Create(obj CBORMarshaler)

	// Readonly loads a readonly copy of the state into the argument.
	//
	// Any modification to the state is illegal and will result in an abort.
	Readonly(obj CBORUnmarshaler)

	// Transaction loads a mutable version of the state into the `obj` argument
	// and protects the execution from side effects (including transfers, lock
	// writes and notifications).
	//
	// The second argument is a function which allows the caller to mutate the
	// state. The return value from that function will be returned from the
	// call to Transaction().
	//
	// If the state is modified after this function returns, execution will abort.
	Transaction(obj CBORer, f func() interface{}) interface{}
}

// Invokee is implemented by actors to expose their method dispatch table.
type Invokee interface {
	Exports() []interface{}
}

// These interfaces are intended to match those from whyrusleeping/cbor-gen,
// such that code generated from that system is automatically usable here.
type CBORMarshaler interface {
	MarshalCBOR(w io.Writer) error
}

type CBORUnmarshaler interface {
	UnmarshalCBOR(r io.Reader) error
}

type CBORer interface {
	CBORMarshaler
	CBORUnmarshaler
}
