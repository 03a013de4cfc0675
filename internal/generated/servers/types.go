package servers

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for Category.
const (
	LargeFormat Category = "large-format"
	Packaging   Category = "packaging"
	Polygraphy  Category = "polygraphy"
	Souvenirs   Category = "souvenirs"
)

// Defines values for StatisticsPeriod.
const (
	StatisticsPeriodMonth StatisticsPeriod = "month"
	StatisticsPeriodWeek  StatisticsPeriod = "week"
	StatisticsPeriodYear  StatisticsPeriod = "year"
)

// Defines values for Status.
const (
	InProgress Status = "in-progress"
	NotReady   Status = "not-ready"
	Ready      Status = "ready"
)

// Defines values for GetStatisticsParamsPeriod.
const (
	Month GetStatisticsParamsPeriod = "month"
	Week  GetStatisticsParamsPeriod = "week"
	Year  GetStatisticsParamsPeriod = "year"
)

// ArchiveResult defines model for ArchiveResult.
type ArchiveResult struct {
	Changed int `json:"changed"`
}

// Bucket defines model for Bucket.
type Bucket struct {
	Count int64  `json:"count"`
	Label string `json:"label"`
}

// Category defines model for Category.
type Category string

// CompanySettings defines model for CompanySettings.
type CompanySettings struct {
	Address *string `json:"address,omitempty"`
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int     `json:"code"`
	Field   *string `json:"field,omitempty"`
	Message string  `json:"message"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	ActorId   *openapi_types.UUID `json:"actorId"`
	ActorName *string             `json:"actorName,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	Id        openapi_types.UUID  `json:"id"`
	Message   string              `json:"message"`
}

// Item defines model for Item.
type Item struct {
	Comment         string              `json:"comment"`
	Deadline        *openapi_types.Date `json:"deadline"`
	Id              openapi_types.UUID  `json:"id"`
	IsArchived      bool                `json:"isArchived"`
	Name            string              `json:"name"`
	OrderId         openapi_types.UUID  `json:"orderId"`
	Quantity        int                 `json:"quantity"`
	ReadyAt         *time.Time          `json:"readyAt"`
	ResponsibleId   *openapi_types.UUID `json:"responsibleId"`
	ResponsibleName *string             `json:"responsibleName,omitempty"`
	Status          Status              `json:"status"`
}

// ItemPatch defines model for ItemPatch.
type ItemPatch struct {
	Comment       *string                               `json:"comment,omitempty"`
	Deadline      nullable.Nullable[openapi_types.Date] `json:"deadline,omitempty"`
	Name          *string                               `json:"name,omitempty"`
	Quantity      *int                                  `json:"quantity,omitempty"`
	ResponsibleId nullable.Nullable[openapi_types.UUID] `json:"responsibleId,omitempty"`
	Status        *Status                               `json:"status,omitempty"`
}

// ItemWrite defines model for ItemWrite.
type ItemWrite struct {
	Comment       *string                               `json:"comment,omitempty"`
	Deadline      nullable.Nullable[openapi_types.Date] `json:"deadline,omitempty"`
	Id            *openapi_types.UUID                   `json:"id,omitempty"`
	Name          *string                               `json:"name,omitempty"`
	Quantity      *int                                  `json:"quantity,omitempty"`
	ResponsibleId nullable.Nullable[openapi_types.UUID] `json:"responsibleId,omitempty"`
	Status        *Status                               `json:"status,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Client string       `json:"client"`
	Items  *[]ItemPatch `json:"items,omitempty"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Category Category `json:"category"`
	Icon     *string  `json:"icon,omitempty"`
	Name     string   `json:"name"`
}

// NewStaff defines model for NewStaff.
type NewStaff struct {
	DayBeforeNotifications *bool   `json:"dayBeforeNotifications,omitempty"`
	FullName               *string `json:"fullName,omitempty"`
	Username               string  `json:"username"`
}

// Order defines model for Order.
type Order struct {
	Client    string             `json:"client"`
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	Items     []Item             `json:"items"`
	Status    Status             `json:"status"`
}

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	Client    string             `json:"client"`
	CreatedAt time.Time          `json:"createdAt"`
	History   []HistoryEntry     `json:"history"`
	Id        openapi_types.UUID `json:"id"`
	Items     []Item             `json:"items"`
	Status    Status             `json:"status"`
}

// OrderUpdate defines model for OrderUpdate.
type OrderUpdate struct {
	Client *string      `json:"client,omitempty"`
	Items  *[]ItemWrite `json:"items,omitempty"`
	Status *Status      `json:"status,omitempty"`
}

// Product defines model for Product.
type Product struct {
	Category Category           `json:"category"`
	Icon     string             `json:"icon"`
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
}

// Staff defines model for Staff.
type Staff struct {
	DayBeforeNotifications bool               `json:"dayBeforeNotifications"`
	FullName               string             `json:"fullName"`
	Id                     openapi_types.UUID `json:"id"`
	Username               string             `json:"username"`
}

// Statistics defines model for Statistics.
type Statistics struct {
	Activity         []Bucket         `json:"activity"`
	CreatedToday     int64            `json:"createdToday"`
	InProgressOrders int64            `json:"inProgressOrders"`
	Period           StatisticsPeriod `json:"period"`
	StatusCounts     []Bucket         `json:"statusCounts"`
	TopItem          string           `json:"topItem"`
	TotalOrders      int64            `json:"totalOrders"`
}

// StatisticsPeriod defines model for Statistics.Period.
type StatisticsPeriod string

// Status defines model for Status.
type Status string

// TelegramSettings defines model for TelegramSettings.
type TelegramSettings struct {
	BotToken *string `json:"botToken,omitempty"`
	ChatId   *string `json:"chatId,omitempty"`
}

// ActorID defines model for ActorID.
type ActorID = openapi_types.UUID

// OrderID defines model for OrderID.
type OrderID = openapi_types.UUID

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Archived *bool `form:"archived,omitempty" json:"archived,omitempty"`
}

// CreateOrderParams defines parameters for CreateOrder.
type CreateOrderParams struct {
	// XActorID Staff member performing the change. Absent for system changes.
	XActorID *ActorID `json:"X-Actor-ID,omitempty"`
}

// GetOrderParams defines parameters for GetOrder.
type GetOrderParams struct {
	Archived *bool `form:"archived,omitempty" json:"archived,omitempty"`
}

// UpdateOrderParams defines parameters for UpdateOrder.
type UpdateOrderParams struct {
	// XActorID Staff member performing the change. Absent for system changes.
	XActorID *ActorID `json:"X-Actor-ID,omitempty"`
}

// ArchiveOrderParams defines parameters for ArchiveOrder.
type ArchiveOrderParams struct {
	// XActorID Staff member performing the change. Absent for system changes.
	XActorID *ActorID `json:"X-Actor-ID,omitempty"`
}

// UnarchiveOrderParams defines parameters for UnarchiveOrder.
type UnarchiveOrderParams struct {
	// XActorID Staff member performing the change. Absent for system changes.
	XActorID *ActorID `json:"X-Actor-ID,omitempty"`
}

// UpdateItemParams defines parameters for UpdateItem.
type UpdateItemParams struct {
	// XActorID Staff member performing the change. Absent for system changes.
	XActorID *ActorID `json:"X-Actor-ID,omitempty"`
}

// GetStatisticsParams defines parameters for GetStatistics.
type GetStatisticsParams struct {
	Period *GetStatisticsParamsPeriod `form:"period,omitempty" json:"period,omitempty"`
}

// GetStatisticsParamsPeriod defines parameters for GetStatistics.
type GetStatisticsParamsPeriod string

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = OrderUpdate

// UpdateItemJSONRequestBody defines body for UpdateItem for application/json ContentType.
type UpdateItemJSONRequestBody = ItemPatch

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct

// CreateStaffJSONRequestBody defines body for CreateStaff for application/json ContentType.
type CreateStaffJSONRequestBody = NewStaff

// UpdateCompanySettingsJSONRequestBody defines body for UpdateCompanySettings for application/json ContentType.
type UpdateCompanySettingsJSONRequestBody = CompanySettings

// UpdateTelegramSettingsJSONRequestBody defines body for UpdateTelegramSettings for application/json ContentType.
type UpdateTelegramSettingsJSONRequestBody = TelegramSettings
