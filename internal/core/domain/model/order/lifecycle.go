package order

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ItemPatch is a partial item write. Unset fields keep their current value on
// update and take their default on creation.
//
// Deadline and ResponsibleID are nullable: Some(nil) clears them.
type ItemPatch struct {
	Name          kernel.Optional[string]
	Quantity      kernel.Optional[int]
	Deadline      kernel.Optional[*time.Time]
	Status        kernel.Optional[Status]
	ResponsibleID kernel.Optional[*kernel.UUID]
	Comment       kernel.Optional[string]
}

// ApplyItemWrite produces the effective item for a create or update inside orderID.
//
// Business rules:
//   - existing == nil creates a new item with a fresh identifier; the name is required,
//     quantity defaults to 1 and status defaults to NotReady
//   - an existing item of another order is reported as ObjectNotFoundError; items are
//     never moved between orders
//   - a quantity of zero or less is a ValueIsOutOfRangeError on "quantity"
//   - entering Ready stamps ReadyAt with now unless it is already set; any other status
//     clears ReadyAt
//
// existing is never modified. Aggregating the order status is the caller's job.
//
// Example:
//
//	item, err := order.ApplyItemWrite(nil, o.ID(), order.ItemPatch{
//	    Name:     kernel.Some("Business cards"),
//	    Quantity: kernel.Some(500),
//	}, time.Now())
func ApplyItemWrite(existing *Item, orderID kernel.UUID, patch ItemPatch, now time.Time) (*Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("order", err)
	}

	var next Item
	if existing == nil {
		if !patch.Name.IsSet() {
			return nil, errs.NewValueIsRequiredError("name")
		}
		next = Item{
			id:       kernel.NewUUID(),
			orderID:  orderID,
			quantity: 1,
			status:   NotReady,
			guard:    guard.NewConstructorGuard(),
		}
	} else {
		if err := existing.Validate(); err != nil {
			return nil, err
		}
		if !existing.orderID.IsEqual(orderID) {
			return nil, errs.NewObjectNotFoundError("item", existing.id.String())
		}
		next = *existing
	}

	var setErrs []error
	if name, ok := patch.Name.Get(); ok {
		setErrs = append(setErrs, next.setName(name))
	}
	if quantity, ok := patch.Quantity.Get(); ok {
		setErrs = append(setErrs, next.setQuantity(quantity))
	}
	if status, ok := patch.Status.Get(); ok {
		setErrs = append(setErrs, next.setStatus(status))
	}
	if responsible, ok := patch.ResponsibleID.Get(); ok {
		setErrs = append(setErrs, next.setResponsible(responsible))
	}
	if deadline, ok := patch.Deadline.Get(); ok {
		next.deadline = dateOf(deadline)
	}
	if comment, ok := patch.Comment.Get(); ok {
		next.comment = comment
	}
	if err := errors.Join(setErrs...); err != nil {
		return nil, err
	}

	switch {
	case next.status != Ready:
		next.readyAt = nil
	case next.readyAt == nil:
		stamp := now
		next.readyAt = &stamp
	}

	return &next, nil
}
