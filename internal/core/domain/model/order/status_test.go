package order_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.NotReady, "not-ready"},
		{order.InProgress, "in-progress"},
		{order.Ready, "ready"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown input", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "READY", "done"} {
			_, err := order.ParseStatus(input)

			require.Error(t, err, input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			field, ok := errs.Field(err)
			assert.True(t, ok)
			assert.Equal(t, "status", field)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		require.NoError(t, status.Validate())
	}
	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(4)} {
		t.Run(fmt.Sprintf("rejects %d", int(status)), func(t *testing.T) {
			assert.IsType(t, &errs.ValueIsInvalidError{}, status.Validate())
		})
	}
}

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []order.Status
		want     order.Status
	}{
		{"no items", nil, order.NotReady},
		{"single not ready", []order.Status{order.NotReady}, order.NotReady},
		{"all not ready", []order.Status{order.NotReady, order.NotReady}, order.NotReady},
		{"single ready", []order.Status{order.Ready}, order.Ready},
		{"all ready", []order.Status{order.Ready, order.Ready, order.Ready}, order.Ready},
		{"single in progress", []order.Status{order.InProgress}, order.InProgress},
		{"ready and not ready", []order.Status{order.Ready, order.NotReady}, order.InProgress},
		{"in progress and ready", []order.Status{order.InProgress, order.Ready}, order.InProgress},
		{"in progress and not ready", []order.Status{order.NotReady, order.InProgress}, order.InProgress},
		{"all three", []order.Status{order.Ready, order.InProgress, order.NotReady}, order.InProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.AggregateStatus(tt.statuses))
		})
	}
}

func TestAggregateStatus_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	all := order.Statuses()

	for range 500 {
		n := rng.IntN(8)
		statuses := make([]order.Status, n)
		for i := range statuses {
			statuses[i] = all[rng.IntN(len(all))]
		}

		got := order.AggregateStatus(statuses)

		shuffled := append([]order.Status(nil), statuses...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		require.Equal(t, got, order.AggregateStatus(shuffled), "permutation changed result for %v", statuses)

		var ready, inProgress int
		for _, s := range statuses {
			switch s {
			case order.Ready:
				ready++
			case order.InProgress:
				inProgress++
			}
		}
		if n > 0 && ready == n {
			require.Equal(t, order.Ready, got, "%v", statuses)
		}
		if inProgress > 0 {
			require.Equal(t, order.InProgress, got, "%v", statuses)
		}
		if ready == 0 && inProgress == 0 {
			require.Equal(t, order.NotReady, got, "%v", statuses)
		}
	}
}
