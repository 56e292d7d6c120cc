package mock

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"runtime/debug"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	vmr "github.com/vestlock/vesting-actors/actors/runtime"
)

// A mock runtime for unit testing of actors in isolation.
// The mock allows direct specification of the runtime context as observable by an actor, supports
// the storage interface, and mocks out side-effect-inducing calls.
type Runtime struct {
	// Execution context
	ctx        context.Context
	epoch      abi.ChainEpoch
	receiver   addr.Address
	caller     addr.Address
	callerType cid.Cid

	// Account balances as observable through BalanceOf. Successful expected
	// transfers update these so subsequent reads see the moved value.
	balances map[addr.Address]abi.TokenAmount

	// Balance locks as last written by the actor under test.
	locks map[lockKey]lockEntry

	// Actor state
	state cid.Cid

	// VM implementation
	inCall        bool
	store         map[cid.Cid][]byte
	inTransaction bool

	// Expectations
	t                        testing.TB
	expectValidateCallerAny  bool
	expectValidateCallerAddr []addr.Address
	expectValidateCallerType []cid.Cid
	expectTransfers          []*expectedTransfer
	expectLockSets           []*expectedLockSet
	expectLockRemovals       []*expectedLockRemoval
	expectEmits              []vmr.CBORMarshaler
}

type lockKey struct {
	id  vmr.LockID
	who addr.Address
}

type lockEntry struct {
	amount  abi.TokenAmount
	reasons vmr.WithdrawReasons
}

type expectedTransfer struct {
	// Expected parameters.
	from       addr.Address
	to         addr.Address
	amount     abi.TokenAmount
	allowDeath bool

	// Result returned to the actor.
	exitCode exitcode.ExitCode
}

func (m *expectedTransfer) Equal(from, to addr.Address, amount abi.TokenAmount, allowDeath bool) bool {
	return m.from == from && m.to == to && m.amount.Equals(amount) && m.allowDeath == allowDeath
}

func (m *expectedTransfer) String() string {
	return fmt.Sprintf("from: %v to: %v amount: %v allowDeath: %v exitCode: %v", m.from, m.to, m.amount, m.allowDeath, m.exitCode)
}

type expectedLockSet struct {
	id      vmr.LockID
	who     addr.Address
	amount  abi.TokenAmount
	reasons vmr.WithdrawReasons
}

func (m *expectedLockSet) String() string {
	return fmt.Sprintf("id: %q who: %v amount: %v reasons: %v", m.id, m.who, m.amount, m.reasons)
}

type expectedLockRemoval struct {
	id  vmr.LockID
	who addr.Address
}

func (m *expectedLockRemoval) String() string {
	return fmt.Sprintf("id: %q who: %v", m.id, m.who)
}

var _ vmr.Runtime = &Runtime{}
var _ vmr.StateHandle = &Runtime{}
var typeOfRuntimeInterface = reflect.TypeOf((*vmr.Runtime)(nil)).Elem()
var typeOfCborUnmarshaler = reflect.TypeOf((*vmr.CBORUnmarshaler)(nil)).Elem()
var typeOfCborMarshaler = reflect.TypeOf((*vmr.CBORMarshaler)(nil)).Elem()

var cidBuilder = cid.V1Builder{
	Codec:    cid.DagCBOR,
	MhType:   mh.SHA2_256,
	MhLength: 0, // default
}

///// Implementation of the runtime API /////

func (rt *Runtime) Message() vmr.Message {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) CurrEpoch() abi.ChainEpoch {
	rt.requireInCall()
	return rt.epoch
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	rt.requireInCall()
	if !rt.expectValidateCallerAny {
		rt.failTest("unexpected validate-caller-any")
	}
	rt.expectValidateCallerAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	rt.requireInCall()
	rt.checkArgument(len(addrs) > 0, "addrs must be non-empty")
	// Check and clear expectations.
	if len(rt.expectValidateCallerAddr) == 0 {
		rt.failTest("unexpected validate caller addrs")
		return
	}
	if !reflect.DeepEqual(rt.expectValidateCallerAddr, addrs) {
		rt.failTest("unexpected validate caller addrs %v, expected %v", addrs, rt.expectValidateCallerAddr)
		return
	}
	defer func() {
		rt.expectValidateCallerAddr = nil
	}()

	// Implement method.
	for _, expected := range addrs {
		if rt.caller == expected {
			return
		}
	}
	rt.Abortf(exitcode.ErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) ValidateImmediateCallerType(types ...cid.Cid) {
	rt.requireInCall()
	rt.checkArgument(len(types) > 0, "types must be non-empty")

	// Check and clear expectations.
	if len(rt.expectValidateCallerType) == 0 {
		rt.failTest("unexpected validate caller code")
	}
	if !reflect.DeepEqual(rt.expectValidateCallerType, types) {
		rt.failTest("unexpected validate caller code %v, expected %v", types, rt.expectValidateCallerType)
	}
	defer func() {
		rt.expectValidateCallerType = nil
	}()

	// Implement method.
	for _, expected := range types {
		if rt.callerType.Equals(expected) {
			return
		}
	}
	rt.Abortf(exitcode.ErrForbidden, "caller type %v forbidden, allowed: %v", rt.callerType, types)
}

func (rt *Runtime) BalanceOf(who addr.Address) abi.TokenAmount {
	rt.requireInCall()
	balance, found := rt.balances[who]
	if !found {
		return big.Zero()
	}
	return balance
}

func (rt *Runtime) State() vmr.StateHandle {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) Store() vmr.Store {
	// requireInCall omitted because it makes using this mock runtime as a store awkward.
	return rt
}

func (rt *Runtime) Transfer(from, to addr.Address, amount abi.TokenAmount, allowDeath bool) exitcode.ExitCode {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectTransfers) == 0 {
		rt.failTestNow("unexpected transfer from: %v to: %v, amount: %v", from, to, amount)
	}
	expected := rt.expectTransfers[0]

	if !expected.Equal(from, to, amount, allowDeath) {
		rt.failTest("transfer does not match expectation.\n"+
			"Call     - from: %v to: %v amount: %v allowDeath: %v\n"+
			"Expected - %v", from, to, amount, allowDeath, expected)
	}

	// Pop the expectation and, on success, move the balances to reflect the transfer.
	defer func() {
		rt.expectTransfers = rt.expectTransfers[1:]
		if expected.exitCode == exitcode.Ok {
			rt.balances[from] = big.Sub(rt.BalanceOf(from), amount)
			rt.balances[to] = big.Add(rt.BalanceOf(to), amount)
		}
	}()
	return expected.exitCode
}

func (rt *Runtime) SetBalanceLock(id vmr.LockID, who addr.Address, amount abi.TokenAmount, reasons vmr.WithdrawReasons) {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectLockSets) == 0 {
		rt.failTestNow("unexpected balance lock set id: %q who: %v amount: %v", id, who, amount)
	}
	expected := rt.expectLockSets[0]
	if expected.id != id || expected.who != who || !expected.amount.Equals(amount) || expected.reasons != reasons {
		rt.failTest("balance lock set does not match expectation.\n"+
			"Call     - id: %q who: %v amount: %v reasons: %v\n"+
			"Expected - %v", id, who, amount, reasons, expected)
	}
	defer func() {
		rt.expectLockSets = rt.expectLockSets[1:]
	}()
	rt.locks[lockKey{id, who}] = lockEntry{amount: amount, reasons: reasons}
}

func (rt *Runtime) RemoveBalanceLock(id vmr.LockID, who addr.Address) {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectLockRemovals) == 0 {
		rt.failTestNow("unexpected balance lock removal id: %q who: %v", id, who)
	}
	expected := rt.expectLockRemovals[0]
	if expected.id != id || expected.who != who {
		rt.failTest("balance lock removal does not match expectation.\n"+
			"Call     - id: %q who: %v\n"+
			"Expected - %v", id, who, expected)
	}
	defer func() {
		rt.expectLockRemovals = rt.expectLockRemovals[1:]
	}()
	delete(rt.locks, lockKey{id, who})
}

func (rt *Runtime) Emit(evt vmr.CBORMarshaler) {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectEmits) == 0 {
		rt.failTestNow("unexpected event %v", evt)
	}
	expected := rt.expectEmits[0]
	if !reflect.DeepEqual(expected, evt) {
		rt.failTest("event does not match expectation.\n"+
			"Call     - %v\n"+
			"Expected - %v", evt, expected)
	}
	rt.expectEmits = rt.expectEmits[1:]
}

func (rt *Runtime) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	rt.t.Logf("[level %d] "+msg, append([]interface{}{level}, args...)...)
}

func (rt *Runtime) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	rt.requireInCall()
	rt.t.Logf("Mock Runtime Abort ExitCode: %v Reason: %s", errExitCode, fmt.Sprintf(msg, args...))
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) Context() context.Context {
	// requireInCall omitted because it makes using this mock runtime as a store awkward.
	return rt.ctx
}

func (rt *Runtime) checkArgument(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.SysErrorIllegalArgument, msg, args...)
	}
}

///// Store implementation /////

func (rt *Runtime) Get(c cid.Cid, o vmr.CBORUnmarshaler) bool {
	// requireInCall omitted because it makes using this mock runtime as a store awkward.
	data, found := rt.store[c]
	if found {
		err := o.UnmarshalCBOR(bytes.NewReader(data))
		if err != nil {
			rt.Abortf(exitcode.ErrSerialization, err.Error())
		}
	}
	return found
}

func (rt *Runtime) Put(o vmr.CBORMarshaler) cid.Cid {
	// requireInCall omitted because it makes using this mock runtime as a store awkward.
	r := bytes.Buffer{}
	err := o.MarshalCBOR(&r)
	if err != nil {
		rt.Abortf(exitcode.ErrSerialization, err.Error())
	}
	data := r.Bytes()
	key, err := cidBuilder.Sum(data)
	if err != nil {
		rt.Abortf(exitcode.ErrSerialization, err.Error())
	}
	rt.store[key] = data
	return key
}

///// Message implementation /////

func (rt *Runtime) Caller() addr.Address {
	return rt.caller
}

func (rt *Runtime) Receiver() addr.Address {
	return rt.receiver
}

///// State handle implementation /////

func (rt *Runtime) Create(obj vmr.CBORMarshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	rt.state = rt.Store().Put(obj)
}

func (rt *Runtime) Readonly(st vmr.CBORUnmarshaler) {
	found := rt.Store().Get(rt.state, st)
	if !found {
		rt.Abortf(exitcode.ErrIllegalState, "actor state not found: %v", rt.state)
	}
}

func (rt *Runtime) Transaction(st vmr.CBORer, f func() interface{}) interface{} {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested transaction")
	}
	rt.Readonly(st)
	rt.inTransaction = true
	defer func() { rt.inTransaction = false }()
	ret := f()
	rt.state = rt.Put(st)
	return ret
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

///// Inspection facilities /////

func (rt *Runtime) StateRoot() cid.Cid {
	return rt.state
}

func (rt *Runtime) GetState(o vmr.CBORUnmarshaler) {
	data, found := rt.store[rt.state]
	if !found {
		rt.failTestNow("can't find state at root %v", rt.state) // something internal is messed up
	}
	err := o.UnmarshalCBOR(bytes.NewReader(data))
	if err != nil {
		rt.failTestNow("error loading state: %v", err)
	}
}

func (rt *Runtime) GetBalance(who addr.Address) abi.TokenAmount {
	balance, found := rt.balances[who]
	if !found {
		return big.Zero()
	}
	return balance
}

// GetBalanceLock returns the lock recorded for an account, if any.
func (rt *Runtime) GetBalanceLock(id vmr.LockID, who addr.Address) (abi.TokenAmount, vmr.WithdrawReasons, bool) {
	entry, found := rt.locks[lockKey{id, who}]
	if !found {
		return big.Zero(), 0, false
	}
	return entry.amount, entry.reasons, true
}

func (rt *Runtime) GetEpoch() abi.ChainEpoch {
	return rt.epoch
}

///// Mocking facilities /////

func (rt *Runtime) SetCaller(address addr.Address, actorType cid.Cid) {
	rt.caller = address
	rt.callerType = actorType
}

func (rt *Runtime) SetBalance(who addr.Address, amt abi.TokenAmount) {
	rt.balances[who] = amt
}

func (rt *Runtime) SetEpoch(epoch abi.ChainEpoch) {
	rt.epoch = epoch
}

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expectValidateCallerAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...addr.Address) {
	rt.require(len(addrs) > 0, "addrs must be non-empty")
	rt.expectValidateCallerAddr = addrs[:]
}

func (rt *Runtime) ExpectValidateCallerType(types ...cid.Cid) {
	rt.require(len(types) > 0, "types must be non-empty")
	rt.expectValidateCallerType = types[:]
}

func (rt *Runtime) ExpectTransfer(from, to addr.Address, amount abi.TokenAmount, allowDeath bool, exitCode exitcode.ExitCode) {
	rt.expectTransfers = append(rt.expectTransfers, &expectedTransfer{
		from:       from,
		to:         to,
		amount:     amount,
		allowDeath: allowDeath,
		exitCode:   exitCode,
	})
}

func (rt *Runtime) ExpectSetBalanceLock(id vmr.LockID, who addr.Address, amount abi.TokenAmount, reasons vmr.WithdrawReasons) {
	rt.expectLockSets = append(rt.expectLockSets, &expectedLockSet{
		id:      id,
		who:     who,
		amount:  amount,
		reasons: reasons,
	})
}

func (rt *Runtime) ExpectRemoveBalanceLock(id vmr.LockID, who addr.Address) {
	rt.expectLockRemovals = append(rt.expectLockRemovals, &expectedLockRemoval{
		id:  id,
		who: who,
	})
}

func (rt *Runtime) ExpectEmit(evt vmr.CBORMarshaler) {
	rt.expectEmits = append(rt.expectEmits, evt)
}

// Verifies that expected calls were received, and resets all expectations.
func (rt *Runtime) Verify() {
	if rt.expectValidateCallerAny {
		rt.failTest("expected ValidateCallerAny, not received")
	}
	if len(rt.expectValidateCallerAddr) > 0 {
		rt.failTest("expected ValidateCallerAddr %v, not received", rt.expectValidateCallerAddr)
	}
	if len(rt.expectValidateCallerType) > 0 {
		rt.failTest("expected ValidateCallerType %v, not received", rt.expectValidateCallerType)
	}
	if len(rt.expectTransfers) > 0 {
		rt.failTest("expected all transfers to be made, remaining %v", rt.expectTransfers)
	}
	if len(rt.expectLockSets) > 0 {
		rt.failTest("expected all balance locks to be set, remaining %v", rt.expectLockSets)
	}
	if len(rt.expectLockRemovals) > 0 {
		rt.failTest("expected all balance locks to be removed, remaining %v", rt.expectLockRemovals)
	}
	if len(rt.expectEmits) > 0 {
		rt.failTest("expected all events to be emitted, remaining %v", rt.expectEmits)
	}

	rt.Reset()
}

// Resets expectations
func (rt *Runtime) Reset() {
	rt.expectValidateCallerAny = false
	rt.expectValidateCallerAddr = nil
	rt.expectValidateCallerType = nil
	rt.expectTransfers = nil
	rt.expectLockSets = nil
	rt.expectLockRemovals = nil
	rt.expectEmits = nil
}

// Calls f() expecting it to invoke Runtime.Abortf() with a specified exit code.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	prevState := rt.state

	defer func() {
		r := recover()
		if r == nil {
			rt.failTest("expected abort with code %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.failTest("abort expected code %v, got %v %s", expected, a.code, a.msg)
		}
		// Roll back state change.
		rt.state = prevState
	}()
	f()
}

func (rt *Runtime) ExpectAssertionFailure(expected string, f func()) {
	prevState := rt.state

	defer func() {
		r := recover()
		if r == nil {
			rt.failTest("expected panic with message %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if ok {
			rt.failTest("expected panic with message %v but got abort %v", expected, a)
			return
		}
		p, ok := r.(string)
		if !ok {
			panic(r)
		}
		if p != expected {
			rt.failTest("expected panic with message \"%v\" but got message \"%v\"", expected, p)
		}
		// Roll back state change.
		rt.state = prevState
	}()
	f()
}

func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	meth := reflect.ValueOf(method)
	rt.verifyExportedMethodType(meth)

	// There's no panic recovery here. If an abort is expected, this call will be inside an ExpectAbort block.
	// If not expected, the panic will escape and cause the test to fail.

	rt.inCall = true
	defer func() { rt.inCall = false }()
	var arg reflect.Value
	if params != nil {
		arg = reflect.ValueOf(params)
	} else {
		arg = reflect.ValueOf(abi.Empty)
	}
	ret := meth.Call([]reflect.Value{reflect.ValueOf(rt), arg})
	return ret[0].Interface()
}

func (rt *Runtime) verifyExportedMethodType(meth reflect.Value) {
	t := meth.Type()
	rt.require(t.Kind() == reflect.Func, "%v is not a function", meth)
	rt.require(t.NumIn() == 2, "exported method %v must have two parameters, got %v", meth, t.NumIn())
	rt.require(t.In(0) == typeOfRuntimeInterface, "exported method first parameter must be runtime, got %v", t.In(0))
	rt.require(t.In(1).Kind() == reflect.Ptr, "exported method second parameter must be pointer to params, got %v", t.In(1))
	rt.require(t.In(1).Implements(typeOfCborUnmarshaler), "exported method second parameter must be CBOR-unmarshalable params, got %v", t.In(1))
	rt.require(t.NumOut() == 1, "exported method must return a single value")
	rt.require(t.Out(0).Implements(typeOfCborMarshaler), "exported method must return CBOR-marshalable value")
}

func (rt *Runtime) requireInCall() {
	rt.require(rt.inCall, "invalid runtime invocation outside of method call")
}

func (rt *Runtime) require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.failTestNow(msg, args...)
	}
}

func (rt *Runtime) failTest(msg string, args ...interface{}) {
	rt.t.Logf(msg, args...)
	rt.t.Logf("%s", debug.Stack())
	rt.t.Fail()
}

func (rt *Runtime) failTestNow(msg string, args ...interface{}) {
	rt.t.Logf(msg, args...)
	rt.t.Logf("%s", debug.Stack())
	rt.t.FailNow()
}

// Checks that all exported methods on the actor have the expected signature.
func CheckActorExports(t *testing.T, act vmr.Invokee) {
	for i, m := range act.Exports() {
		if i == 0 { // Send is implicit
			continue
		}
		if m == nil {
			continue
		}
		t.Run(fmt.Sprintf("method%d", i), func(t *testing.T) {
			mrt := Runtime{t: t}
			mrt.verifyExportedMethodType(reflect.ValueOf(m))
		})
	}
}
