// Package operations maps operation names to commands and decides, from
// configuration, which of them a caller may use.
//
// The set of operations is fixed at build time. Availability is evaluated
// on every call against the policy the registry was built with:
//
//   - a non-empty enable-list admits exactly the operations it names
//   - otherwise a non-empty disable-list admits everything it does not name
//   - otherwise EnableAllByDefault decides for every operation
//
// The Dispatcher is the single entry point for callers: it resolves the
// operation, checks availability, parses the payload and runs the command.
package operations
