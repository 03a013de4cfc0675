package queries

import (
	"context"
	"errors"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// Period selects the window of the statistics.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Days returns the length of the window in days.
func (p Period) Days() int {
	switch p {
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 7
	}
}

// ParsePeriod accepts week, month and year; an empty string means week.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodWeek, nil
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	default:
		return "", errs.NewValueIsInvalidError("period")
	}
}

// GetStatisticsQuery summarises order activity over a period ending today.
type GetStatisticsQuery struct {
	period Period

	guard guard.ConstructorGuard
}

func NewGetStatisticsQuery(period string) (GetStatisticsQuery, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return GetStatisticsQuery{}, err
	}
	return GetStatisticsQuery{period: p, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

func (q GetStatisticsQuery) Period() Period {
	return q.period
}

// Bucket is one labelled count of a chart.
type Bucket struct {
	Label string
	Count int64
}

// GetStatisticsQueryResponse holds the dashboard figures.
//
// TotalOrders, TopItem, StatusCounts and Activity cover orders created in the period.
// InProgressOrders is the current number of in-progress orders, whatever their age.
// TopItem is empty when no item was ordered in the period.
type GetStatisticsQueryResponse struct {
	Period           Period
	TotalOrders      int64
	InProgressOrders int64
	CreatedToday     int64
	TopItem          string
	StatusCounts     []Bucket
	Activity         []Bucket
}

type GetStatisticsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetStatisticsQueryHandler(db *gorm.DB) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{db: db, now: time.Now}
}

func (h GetStatisticsQueryHandler) Handle(ctx context.Context, query GetStatisticsQuery) (*GetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := order.DateOf(h.now())
	start := today.AddDate(0, 0, -query.Period().Days())
	db := h.db.WithContext(ctx)

	resp := &GetStatisticsQueryResponse{Period: query.Period()}

	counts := []struct {
		target *int64
		where  sq.Sqlizer
	}{
		{&resp.TotalOrders, sq.GtOrEq{"created_at": start}},
		{&resp.InProgressOrders, sq.Eq{"status": order.InProgress.String()}},
		{&resp.CreatedToday, sq.GtOrEq{"created_at": today}},
	}
	for _, c := range counts {
		if err := scanRaw(db, psql.Select("COUNT(*)").From("orders").Where(c.where), c.target); err != nil {
			return nil, err
		}
	}

	var top []topItemRow
	topQuery := psql.
		Select("i.name", "COUNT(*) AS n").
		From("items i").
		Join("orders o ON o.id = i.order_id").
		Where(sq.GtOrEq{"o.created_at": start}).
		GroupBy("i.name").
		OrderBy("n DESC", "i.name").
		Limit(1)
	if err := scanRaw(db, topQuery, &top); err != nil {
		return nil, err
	}
	if len(top) > 0 {
		resp.TopItem = top[0].Name
	}

	var statuses []statusCountRow
	statusQuery := psql.
		Select("status", "COUNT(*) AS n").
		From("orders").
		Where(sq.GtOrEq{"created_at": start}).
		GroupBy("status").
		OrderBy("status")
	if err := scanRaw(db, statusQuery, &statuses); err != nil {
		return nil, err
	}
	for _, s := range statuses {
		resp.StatusCounts = append(resp.StatusCounts, Bucket{Label: s.Status, Count: s.N})
	}

	unit := "day"
	if query.Period() == PeriodYear {
		unit = "month"
	}
	var activity []activityRow
	activityQuery := psql.
		Select("date_trunc('"+unit+"', created_at AT TIME ZONE 'UTC') AS bucket", "COUNT(*) AS n").
		From("orders").
		Where(sq.GtOrEq{"created_at": start}).
		GroupBy("bucket").
		OrderBy("bucket")
	if err := scanRaw(db, activityQuery, &activity); err != nil {
		return nil, err
	}

	if query.Period() == PeriodYear {
		resp.Activity = monthlyActivity(activity)
	} else {
		resp.Activity = dailyActivity(activity, start, today)
	}

	return resp, nil
}

type topItemRow struct {
	Name string
	N    int64
}

type statusCountRow struct {
	Status string
	N      int64
}

type activityRow struct {
	Bucket time.Time
	N      int64
}

// dailyActivity lists every day from start to today inclusive, zero-filled, labelled
// "dd.mm".
func dailyActivity(rows []activityRow, start, today time.Time) []Bucket {
	byDay := make(map[string]int64, len(rows))
	for _, row := range rows {
		byDay[row.Bucket.Format(order.DateLayout)] = row.N
	}

	var buckets []Bucket
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, Bucket{
			Label: day.Format("02.01"),
			Count: byDay[day.Format(order.DateLayout)],
		})
	}
	return buckets
}

// monthlyActivity lists the months having orders, labelled "Jan 2006".
func monthlyActivity(rows []activityRow) []Bucket {
	buckets := make([]Bucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, Bucket{Label: row.Bucket.Format("Jan 2006"), Count: row.N})
	}
	return buckets
}

func scanRaw(db *gorm.DB, builder sq.Sqlizer, dest any) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	return db.Raw(query, args...).Scan(dest).Error
}
