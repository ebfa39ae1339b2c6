// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RecordStore: Document persistence (file, SQLite or memory backend)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ChangeWatcher: Change notifications for the file backend. Without it
//     the watch command is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
