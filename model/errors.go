package model

import "errors"

// Sentinel errors shared by every package in this module. Callers MUST use
// errors.Is to branch on semantics; sentinels are never wrapped with
// formatted strings at the definition site (context is attached with %w at
// the call site instead).
var (
	// ErrEmptyNeighborhood is returned by a NeighborhoodExplorer's RandomMove
	// or FirstMove when the neighborhood at the current state has no moves.
	// It is a recoverable signal: selectors return "no move found", multi-modal
	// composers treat it as a cue to backtrack or try the next component, and
	// Runners treat it as a graceful end of the run.
	ErrEmptyNeighborhood = errors.New("easylocal: empty neighborhood")

	// ErrParameterNotSet indicates a required runner/solver configuration
	// option has no value at the point InitializeRun needs it.
	ErrParameterNotSet = errors.New("easylocal: required parameter not set")

	// ErrIncorrectParameterValue indicates a configuration option has a value
	// outside its declared legal range.
	ErrIncorrectParameterValue = errors.New("easylocal: incorrect parameter value")

	// ErrObjectNotFound indicates a client looked up a named helper (a runner,
	// a component, a kicker) that does not exist.
	ErrObjectNotFound = errors.New("easylocal: object not found")

	// ErrLogicViolation indicates an internal invariant breach, e.g. MakeKick
	// called on an empty kick, or Go called on a Runner that is already
	// executing. It always indicates a bug, either
	// in this module or in client code violating a documented contract.
	ErrLogicViolation = errors.New("easylocal: logic violation")
)
