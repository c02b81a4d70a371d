package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/filehash/internal/adapters/telemetry"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/filehash/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestTracingHasher_Hash(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockHasher(ctrl)
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", recorder)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	next.EXPECT().Hash("/data/a.bin").Return([]byte{0xab, 0xcd}, nil)

	h := telemetry.NewTracingHasher(next, tracer)
	sum, err := h.Hash("/data/a.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, sum)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, domain.SpanHash, ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String(domain.AttrPath, "/data/a.bin"))
	assert.Equal(t, ports.SnapshotStats{Hashed: 1}, tracer.Stats())
}

func TestTracingHasher_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockHasher(ctrl)
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", recorder)

	cause := errors.New("permission denied")
	next.EXPECT().Hash("/data/a.bin").Return(nil, cause)

	h := telemetry.NewTracingHasher(next, tracer)
	sum, err := h.Hash("/data/a.bin")
	require.ErrorIs(t, err, cause)
	assert.Nil(t, sum)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, ports.SnapshotStats{}, tracer.Stats())
}
