// Package orderrepo provides the gorm persistence of the Order aggregate: order rows,
// their items and their history entries, with the mapping between domain objects and
// database rows.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Client    string    `gorm:"size:255;not null"`
	Status    string    `gorm:"size:20;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is a row of the items table. Seq is assigned by the database and only
// used for stable ordering.
type ItemDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq           int64      `gorm:"->"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name          string     `gorm:"size:255;not null"`
	Quantity      int        `gorm:"not null"`
	Deadline      *time.Time `gorm:"type:date"`
	Status        string     `gorm:"size:20;not null"`
	ResponsibleID *uuid.UUID `gorm:"type:uuid"`
	Comment       string     `gorm:"not null"`
	ReadyAt       *time.Time
	IsArchived    bool `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "items"
}

// HistoryDTO is a row of the order_history table.
type HistoryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq       int64      `gorm:"->"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActorID   *uuid.UUID `gorm:"type:uuid"`
	Message   string     `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (HistoryDTO) TableName() string {
	return "order_history"
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:        o.ID().Google(),
		Client:    o.Client(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
	}
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Client, status, dto.CreatedAt)
}

func itemFromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:            item.ID().Google(),
		OrderID:       item.OrderID().Google(),
		Name:          item.Name(),
		Quantity:      item.Quantity(),
		Deadline:      item.Deadline(),
		Status:        item.Status().String(),
		ResponsibleID: kernel.GooglePtr(item.ResponsibleID()),
		Comment:       item.Comment(),
		ReadyAt:       item.ReadyAt(),
		IsArchived:    item.IsArchived(),
	}
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(order.RestoreItemParams{
		ID:            id,
		OrderID:       orderID,
		Name:          dto.Name,
		Quantity:      dto.Quantity,
		Deadline:      dto.Deadline,
		Status:        status,
		ResponsibleID: kernel.UUIDPtrFromGoogle(dto.ResponsibleID),
		Comment:       dto.Comment,
		ReadyAt:       dto.ReadyAt,
		Archived:      dto.IsArchived,
	})
}

func itemsToDomain(dtos []ItemDTO) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func historyFromDomain(entry *order.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		ID:        entry.ID().Google(),
		OrderID:   entry.OrderID().Google(),
		ActorID:   kernel.GooglePtr(entry.ActorID()),
		Message:   entry.Message(),
		CreatedAt: entry.CreatedAt(),
	}
}

func historyToDomain(dto HistoryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return order.RestoreHistoryEntry(id, orderID, kernel.UUIDPtrFromGoogle(dto.ActorID), dto.Message, dto.CreatedAt)
}

func idStrings(ids []kernel.UUID) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, id.String())
	}
	return result
}
