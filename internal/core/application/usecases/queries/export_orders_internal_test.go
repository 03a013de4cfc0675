package queries

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExportRows(t *testing.T) {
	// Given
	withItems := uuid.New()
	empty := uuid.New()
	itemID := uuid.New()
	quantity := 500
	deadline := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)

	records := []exportRecord{
		{
			OrderID: withItems, Client: "Acme", CreatedAt: created, OrderStatus: "in-progress",
			ItemID: &itemID, Name: strPtr("Business cards"), Quantity: &quantity, Deadline: &deadline,
			ItemStatus: strPtr("ready"), ResponsibleName: strPtr("Ivan Petrov"), Comment: strPtr("matte"),
		},
		{
			OrderID: withItems, Client: "Acme", CreatedAt: created, OrderStatus: "in-progress",
			ItemID: &itemID, Name: strPtr("Flyers"), Quantity: &quantity,
			ItemStatus: strPtr("not-ready"), Comment: strPtr(""),
		},
		{OrderID: empty, Client: "Empty", CreatedAt: created, OrderStatus: "not-ready"},
	}

	// When
	rows := exportRows(records)

	// Then
	require.Len(t, rows, 4)
	assert.Equal(t, ExportHeader, rows[0])
	assert.Equal(t, []string{
		withItems.String(), "Acme", "14.03.2026 09:05", "В процессе",
		"Business cards", "500", "20.03.2026", "Готово", "Ivan Petrov", "matte",
	}, rows[1])
	assert.Equal(t, "-", rows[2][6])
	assert.Equal(t, "Нет", rows[2][8])
	assert.Equal(t, []string{
		empty.String(), "Empty", "14.03.2026 09:05", "Не готов", "-", "-", "-", "-", "-", "-",
	}, rows[3])
}

func TestExportRows_OnlyHeaderWhenEmpty(t *testing.T) {
	assert.Equal(t, [][]string{ExportHeader}, exportRows(nil))
}
