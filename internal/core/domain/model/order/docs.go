// Package order provides the Order aggregate of the print shop: orders, their line
// items and their change history.
//
// The package includes:
//   - Order: the aggregate root holding the client and the derived status
//   - Item: a line item with its own production status
//   - HistoryEntry: an append-only audit line
//   - Status and AggregateStatus: the status enumeration and the derivation rule
//   - ApplyItemWrite: the single entry point for creating and updating items
//
// Key business rules:
//   - An order's status is derived from its non-archived items, unless overridden
//   - An item's ready timestamp is set exactly while the item is Ready
//   - Items never move between orders
//
// Persistence and history recording live outside this package; the types here only
// enforce their own invariants.
package order
