// Package pclog realizes spec.md §7's error-handling design — the
// severity ladder CriticalError, Error, Warning, Info, Extra, Memory,
// All — as a thin façade over github.com/op/go-logging. Every message
// carries a timestamp, severity, and source-component label via the
// formatter; CriticalError additionally terminates the process after
// the message is flushed to the backend.
package pclog
