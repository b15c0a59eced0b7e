package cotask

import "fmt"

// DepthOverflowError is returned (by panicking) when a combinator
// addresses a tree slot beyond the tree's configured depth. A faithful
// microcontroller reimplementation detects this as undefined behaviour at
// runtime; this module detects it deterministically on first overflowing
// access, matching spec.md §7.
type DepthOverflowError struct {
	// Slot is the index that was out of range.
	Slot Slot
	// Capacity is the tree's configured slot count (2^depth - 1).
	Capacity int
}

// Error implements error.
func (e DepthOverflowError) Error() string {
	return fmt.Sprintf("cotask: slot %d exceeds tree capacity %d: increase MaxDepth", e.Slot, e.Capacity)
}

// NoPeerError marks a YieldToPeer or PeerValue call made from the tree
// root, which has no parent frame to act as the peer mailbox. A call from
// any other slot counts as having a peer, whether or not its parent is an
// Alternate. spec.md §7 treats the no-peer case as non-fatal by design
// ("the yielded status bubbles up and is coerced to Cont by outer
// combinators"), so the plain YieldToPeer reports it only as a false bool
// and the plain PeerValue only as a nil result. A caller
// that wants the spec's "a stricter implementation may detect it" escape
// hatch calls YieldToPeerStrict or PeerValueStrict instead, which
// construct and return this type, detectable with errors.As, without
// this module imposing that strictness on everyone.
type NoPeerError struct {
	// Slot is the task's own slot, which had no parent to deposit into or
	// read from (it was the tree root).
	Slot Slot
}

// Error implements error.
func (e NoPeerError) Error() string {
	return fmt.Sprintf("cotask: slot %d has no peer: not running under Alternate", e.Slot)
}
