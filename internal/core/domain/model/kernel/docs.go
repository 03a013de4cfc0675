// Package kernel provides the shared value objects of the print-shop domain.
//
// The package includes:
//   - UUID: the identifier of orders, items, history entries, staff and products
//   - Actor: who performed a change (a staff member or the system)
//   - Optional: a patch field that distinguishes "absent" from "set to the zero value"
//
// All types are immutable values and safe for concurrent use.
package kernel
