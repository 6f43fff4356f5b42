// Package actionsink implements the hand-off between the driver/solver
// side of the pipeline and an external consumer (typically a renderer)
// that drains it cooperatively, per spec.md §4.9.
//
// A Sink holds a mutex-protected FIFO of (instruction, rotation) pairs
// for instructions pushed one at a time (scramble moves, speed hints,
// resets), plus a separate stack a full solution's rotations are staged
// onto back-to-front so they pop off — and therefore drain through
// TryPop — in their original, forward, apply order.
package actionsink
