package tracing_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"printshop/internal/pkg/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestStart_WithoutProviderIsNoop(t *testing.T) {
	ctx, span := tracing.Start(t.Context(), "noop")

	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() { tracing.End(span, errors.New("boom")) })
}

func TestSetup_ExportsSpans(t *testing.T) {
	// Given
	var out bytes.Buffer
	shutdown, err := tracing.Setup("printshop-test", &out)
	require.NoError(t, err)

	// When
	_, span := tracing.Start(t.Context(), "UpdateOrder", attribute.String("order.id", "42"))
	tracing.End(span, errors.New("storage unavailable"))
	require.NoError(t, shutdown(context.Background()))

	// Then
	assert.Contains(t, out.String(), `"Name":"UpdateOrder"`)
	assert.Contains(t, out.String(), "storage unavailable")
}
