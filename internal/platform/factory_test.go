package platform

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/terrane/pkg/core"
	"github.com/aretw0/terrane/pkg/primitives"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	require.Nil(t, o.logger)
	require.Zero(t, o.workers)
}

func TestOptionsApply(t *testing.T) {
	logger := slog.Default()
	o := defaultOptions()
	for _, opt := range []Option{WithLogger(logger), WithWorkers(4)} {
		opt(o)
	}
	require.Same(t, logger, o.logger)
	require.Equal(t, 4, o.workers)
}

func TestNewSampler(t *testing.T) {
	sampler := NewSampler(primitives.NewConstNoise(1), WithWorkers(2))
	values, err := sampler.Plane(core.Vec2{}, core.Vec2{X: 1, Y: 1}, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 1, 1, 1}, values)
}
