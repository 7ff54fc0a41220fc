// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration
//   - PriceBook: Unit prices for material estimation. The memory adapter
//     seeds built-in defaults; the sqlite adapter persists overrides.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EstimateWriter: Workbook export of priced estimates. Without it, the
//     export commands are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
