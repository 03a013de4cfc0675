package queries

import (
	"context"
	"errors"
	"strconv"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportHeader is the first row of every export.
var ExportHeader = []string{
	"ID Заказа", "Клиент", "Дата создания", "Статус заказа",
	"Товар", "Кол-во", "Дедлайн", "Статус товара", "Ответственный", "Комментарий",
}

var statusLabels = map[string]string{
	order.NotReady.String():   "Не готов",
	order.InProgress.String(): "В процессе",
	order.Ready.String():      "Готово",
}

const (
	exportCreatedLayout  = "02.01.2006 15:04"
	exportDeadlineLayout = "02.01.2006"
	noResponsible        = "Нет"
	emptyCell            = "-"
)

// ExportOrdersQuery flattens every order into spreadsheet rows: the header, then one row
// per item, archived ones included. An order without items gets a single row of dashes.
// Orders come newest first.
type ExportOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewExportOrdersQuery() ExportOrdersQuery {
	return ExportOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

type ExportOrdersQueryHandler struct {
	db *gorm.DB
}

func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{db: db}
}

// Handle returns the rows with the header first.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) ([][]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	builder := psql.
		Select(
			"o.id AS order_id", "o.client", "o.created_at", "o.status AS order_status",
			"i.id AS item_id", "i.name", "i.quantity", "i.deadline", "i.status AS item_status",
			staffDisplayName+" AS responsible_name", "i.comment",
		).
		From("orders o").
		LeftJoin("items i ON i.order_id = o.id").
		LeftJoin("staff s ON s.id = i.responsible_id").
		OrderBy("o.created_at DESC", "o.id", "i.seq")

	var records []exportRecord
	if err := scanRaw(h.db.WithContext(ctx), builder, &records); err != nil {
		return nil, err
	}

	return exportRows(records), nil
}

type exportRecord struct {
	OrderID         uuid.UUID
	Client          string
	CreatedAt       time.Time
	OrderStatus     string
	ItemID          *uuid.UUID
	Name            *string
	Quantity        *int
	Deadline        *time.Time
	ItemStatus      *string
	ResponsibleName *string
	Comment         *string
}

func exportRows(records []exportRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, ExportHeader)

	for _, r := range records {
		row := []string{
			r.OrderID.String(),
			r.Client,
			r.CreatedAt.UTC().Format(exportCreatedLayout),
			statusLabel(r.OrderStatus),
		}

		if r.ItemID == nil {
			row = append(row, emptyCell, emptyCell, emptyCell, emptyCell, emptyCell, emptyCell)
			rows = append(rows, row)
			continue
		}

		deadline := emptyCell
		if r.Deadline != nil {
			deadline = r.Deadline.Format(exportDeadlineLayout)
		}
		responsible := noResponsible
		if r.ResponsibleName != nil {
			responsible = *r.ResponsibleName
		}

		row = append(row,
			deref(r.Name),
			strconv.Itoa(derefInt(r.Quantity)),
			deadline,
			statusLabel(deref(r.ItemStatus)),
			responsible,
			deref(r.Comment),
		)
		rows = append(rows, row)
	}
	return rows
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
