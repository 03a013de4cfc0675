package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status is the production state shared by items and orders.
//
// Items move freely between the three valid states; there is no transition table.
// The order status is derived from its items with AggregateStatus.
//
// Status round-trips through its string form ("not-ready", "in-progress", "ready")
// in the API and in the database.
type Status int

const (
	// Unknown catches uninitialized values and is never valid.
	Unknown Status = iota

	// NotReady is the initial state of every order and item.
	NotReady

	// InProgress means work has started on at least part of the order.
	InProgress

	// Ready means the item (or every item of the order) is finished.
	Ready
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		NotReady:   "not-ready",
		InProgress: "in-progress",
		Ready:      "ready",
	}
}

// Statuses returns the valid statuses in workflow order.
func Statuses() []Status {
	return []Status{NotReady, InProgress, Ready}
}

// ParseStatus converts the wire form of a status.
//
// Returns a ValueIsInvalidError attributed to "status" for any other input.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of NotReady, InProgress or Ready.
func (s Status) Validate() error {
	if s < NotReady || s > Ready {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AggregateStatus derives an order status from the statuses of its non-archived items.
//
// Rules, applied in order:
//  1. no items: NotReady
//  2. every item Ready: Ready
//  3. any item InProgress, or Ready mixed with NotReady: InProgress
//  4. otherwise (every item NotReady): NotReady
//
// The result depends only on the multiset of statuses, never on their order.
//
// Example:
//
//	order.AggregateStatus([]order.Status{order.Ready, order.NotReady}) // InProgress
func AggregateStatus(statuses []Status) Status {
	if len(statuses) == 0 {
		return NotReady
	}

	var ready, inProgress, notReady int
	for _, s := range statuses {
		switch s {
		case Ready:
			ready++
		case InProgress:
			inProgress++
		default:
			notReady++
		}
	}

	switch {
	case ready == len(statuses):
		return Ready
	case inProgress > 0 || (ready > 0 && notReady > 0):
		return InProgress
	default:
		return NotReady
	}
}
