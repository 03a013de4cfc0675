// Package services provides domain services that work across the Order aggregate's
// parts: the change history recorder and the order synchronizer.
//
// The package includes:
//   - HistoryRecorder: turns field and item differences into human-readable history entries
//   - OrderSynchronizer: plans an order update that replaces, merges and removes items
//
// Both services are pure: they never touch storage. Command handlers persist their output
// inside a single unit of work.
package services
