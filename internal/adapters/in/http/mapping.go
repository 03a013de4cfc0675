package http

import (
	"time"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/generated/servers"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// actorOf resolves the X-Actor-ID header. No header means the system acted.
func actorOf(id *servers.ActorID) (kernel.Actor, error) {
	if id == nil {
		return kernel.SystemActor(), nil
	}
	staffID, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause("X-Actor-ID", err)
	}
	return kernel.NewActor(staffID)
}

func idOf(id uuid.UUID, field string) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return parsed, nil
}

type itemFields struct {
	Name          *string
	Quantity      *int
	Deadline      nullable.Nullable[openapi_types.Date]
	Status        *servers.Status
	ResponsibleID nullable.Nullable[openapi_types.UUID]
	Comment       *string
}

// patch keeps the three states of nullable fields: absent, null and set.
func (f itemFields) patch() (order.ItemPatch, error) {
	p := order.ItemPatch{
		Name:     kernel.FromPtr(f.Name),
		Quantity: kernel.FromPtr(f.Quantity),
		Comment:  kernel.FromPtr(f.Comment),
	}

	if f.Status != nil {
		status, err := order.ParseStatus(string(*f.Status))
		if err != nil {
			return order.ItemPatch{}, err
		}
		p.Status = kernel.Some(status)
	}

	switch {
	case !f.Deadline.IsSpecified():
	case f.Deadline.IsNull():
		p.Deadline = kernel.Some[*time.Time](nil)
	default:
		deadline := f.Deadline.MustGet().Time
		p.Deadline = kernel.Some(&deadline)
	}

	switch {
	case !f.ResponsibleID.IsSpecified():
	case f.ResponsibleID.IsNull():
		p.ResponsibleID = kernel.Some[*kernel.UUID](nil)
	default:
		id, err := idOf(f.ResponsibleID.MustGet(), "responsible")
		if err != nil {
			return order.ItemPatch{}, err
		}
		p.ResponsibleID = kernel.Some(&id)
	}

	return p, nil
}

func fromItemPatch(body servers.ItemPatch) itemFields {
	return itemFields{
		Name:          body.Name,
		Quantity:      body.Quantity,
		Deadline:      body.Deadline,
		Status:        body.Status,
		ResponsibleID: body.ResponsibleId,
		Comment:       body.Comment,
	}
}

func newItemPatches(items *[]servers.ItemPatch) ([]order.ItemPatch, error) {
	if items == nil {
		return nil, nil
	}
	patches := make([]order.ItemPatch, 0, len(*items))
	for _, item := range *items {
		p, err := fromItemPatch(item).patch()
		if err != nil {
			return nil, err
		}
		patches = append(patches, p)
	}
	return patches, nil
}

// itemWrites returns nil when the request leaves the items alone.
func itemWrites(items *[]servers.ItemWrite) (*[]services.ItemWrite, error) {
	if items == nil {
		return nil, nil
	}

	writes := make([]services.ItemWrite, 0, len(*items))
	for _, item := range *items {
		p, err := itemFields{
			Name:          item.Name,
			Quantity:      item.Quantity,
			Deadline:      item.Deadline,
			Status:        item.Status,
			ResponsibleID: item.ResponsibleId,
			Comment:       item.Comment,
		}.patch()
		if err != nil {
			return nil, err
		}

		write := services.ItemWrite{Patch: p}
		if item.Id != nil {
			id, err := idOf(*item.Id, "id")
			if err != nil {
				return nil, err
			}
			write.ID = &id
		}
		writes = append(writes, write)
	}
	return &writes, nil
}

func orderChanges(body servers.OrderUpdate) (services.OrderChanges, error) {
	changes := services.OrderChanges{Client: kernel.FromPtr(body.Client)}
	if body.Status != nil {
		status, err := order.ParseStatus(string(*body.Status))
		if err != nil {
			return services.OrderChanges{}, err
		}
		changes.Status = kernel.Some(status)
	}
	return changes, nil
}

func toItem(item queries.ItemResponse) servers.Item {
	resp := servers.Item{
		Id:            item.ID,
		OrderId:       item.OrderID,
		Name:          item.Name,
		Quantity:      item.Quantity,
		Status:        servers.Status(item.Status),
		ResponsibleId: item.ResponsibleID,
		Comment:       item.Comment,
		ReadyAt:       item.ReadyAt,
		IsArchived:    item.IsArchived,
	}
	if item.Deadline != nil {
		resp.Deadline = &openapi_types.Date{Time: *item.Deadline}
	}
	if item.ResponsibleName != "" {
		name := item.ResponsibleName
		resp.ResponsibleName = &name
	}
	return resp
}

func toItems(items []queries.ItemResponse) []servers.Item {
	resp := make([]servers.Item, len(items))
	for i, item := range items {
		resp[i] = toItem(item)
	}
	return resp
}

func toOrder(o queries.OrderResponse) servers.Order {
	return servers.Order{
		Id:        o.ID,
		Client:    o.Client,
		Status:    servers.Status(o.Status),
		CreatedAt: o.CreatedAt,
		Items:     toItems(o.Items),
	}
}

func toHistory(entries []queries.HistoryEntryResponse) []servers.HistoryEntry {
	resp := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		resp[i] = servers.HistoryEntry{
			Id:        e.ID,
			ActorId:   e.ActorID,
			Message:   e.Message,
			CreatedAt: e.CreatedAt,
		}
		if e.ActorName != "" {
			name := e.ActorName
			resp[i].ActorName = &name
		}
	}
	return resp
}

func toOrderDetails(o *queries.GetOrderQueryResponse) servers.OrderDetails {
	return servers.OrderDetails{
		Id:        o.ID,
		Client:    o.Client,
		Status:    servers.Status(o.Status),
		CreatedAt: o.CreatedAt,
		Items:     toItems(o.Items),
		History:   toHistory(o.History),
	}
}

func toStatistics(s *queries.GetStatisticsQueryResponse) servers.Statistics {
	buckets := func(in []queries.Bucket) []servers.Bucket {
		out := make([]servers.Bucket, len(in))
		for i, b := range in {
			out[i] = servers.Bucket{Label: b.Label, Count: b.Count}
		}
		return out
	}
	return servers.Statistics{
		Period:           servers.StatisticsPeriod(s.Period),
		TotalOrders:      s.TotalOrders,
		InProgressOrders: s.InProgressOrders,
		CreatedToday:     s.CreatedToday,
		TopItem:          s.TopItem,
		StatusCounts:     buckets(s.StatusCounts),
		Activity:         buckets(s.Activity),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
