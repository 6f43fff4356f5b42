package actionsink

import (
	"sync"
	"sync/atomic"

	"github.com/linusvdv/puppet-cube-v2/rotation"
)

// Instruction enumerates the kinds of action a Sink can carry.
type Instruction uint8

const (
	// InstructionRotation carries a single rotation to apply.
	InstructionRotation Instruction = iota
	// InstructionIsScrambling is a speed hint: the following rotations
	// belong to a scramble and may be played back quickly.
	InstructionIsScrambling
	// InstructionIsSolving is a speed hint: the following rotations are
	// the solution and may warrant a slower, more legible playback.
	InstructionIsSolving
	// InstructionReset asks the consumer to snap back to the solved
	// state outside of rotation playback.
	InstructionReset
)

// Action pairs an Instruction with the Rotation it applies to, when
// Instruction is InstructionRotation; the Rotation field is unused
// otherwise.
type Action struct {
	Instruction Instruction
	Rotation    rotation.Rotation
}

// Sink is the mutex-protected FIFO plus solution stack of spec.md §4.9.
// The zero value is an empty, ready-to-use Sink, the same as New returns.
type Sink struct {
	mu            sync.Mutex
	queue         []Action
	solutionStack []rotation.Rotation
	stop          atomic.Bool
}

// New returns an empty, ready-to-use Sink.
func New() *Sink {
	return &Sink{}
}

// Push enqueues a plain instruction (no rotation payload), such as a
// speed hint or a reset.
func (s *Sink) Push(instr Instruction) {
	s.mu.Lock()
	s.queue = append(s.queue, Action{Instruction: instr})
	s.mu.Unlock()
}

// PushRotation enqueues a single rotation action, typically one move of
// a scramble.
func (s *Sink) PushRotation(r rotation.Rotation) {
	s.mu.Lock()
	s.queue = append(s.queue, Action{Instruction: InstructionRotation, Rotation: r})
	s.mu.Unlock()
}

// LoadSolution stages path for incremental draining: it is pushed onto
// the internal stack back-to-front (last rotation first) so that
// draining the stack, one pop at a time, yields path's rotations in
// their original forward, apply order.
func (s *Sink) LoadSolution(path []rotation.Rotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(path) - 1; i >= 0; i-- {
		s.solutionStack = append(s.solutionStack, path[i])
	}
}

// TryPop returns the next action to apply: instructions pushed directly
// via Push/PushRotation drain first, then, once those are exhausted,
// staged solution rotations surface as InstructionRotation actions.
// Returns false once both are empty.
func (s *Sink) TryPop() (Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) > 0 {
		a := s.queue[0]
		s.queue = s.queue[1:]
		return a, true
	}

	n := len(s.solutionStack)
	if n == 0 {
		return Action{}, false
	}
	r := s.solutionStack[n-1]
	s.solutionStack = s.solutionStack[:n-1]
	return Action{Instruction: InstructionRotation, Rotation: r}, true
}

// Stop sets the atomic stop flag; producers and consumers poll Stopped
// at loop boundaries to wind down cooperatively.
func (s *Sink) Stop() {
	s.stop.Store(true)
}

// Stopped reports whether Stop has been called.
func (s *Sink) Stopped() bool {
	return s.stop.Load()
}
