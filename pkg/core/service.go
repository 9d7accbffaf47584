package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dgravesa/go-parallel/parallel"
)

// Sampler handles bulk evaluation of a module over sample planes.
// It is the only part of the library that logs; Generate itself
// reports failures purely as error values.
type Sampler struct {
	module  Module
	logger  *slog.Logger
	workers int
}

// NewSampler creates a new Sampler for the given module. A nil logger
// disables logging. workers caps the goroutines used per plane; zero
// or negative means the executor default.
func NewSampler(m Module, logger *slog.Logger, workers int) *Sampler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sampler{module: m, logger: logger, workers: workers}
}

// Plane evaluates the module over a width x height grid of coordinates,
// starting at origin and advancing by step per cell. Values are
// returned row-major. Rows are filled concurrently, which is safe as
// long as nothing mutates the module's parameters during the call.
func (s *Sampler) Plane(origin, step Vec2, width, height int) ([]float32, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid plane dimensions %dx%d", width, height)
	}

	s.logger.Debug("sampling plane",
		"width", width, "height", height, "origin_x", origin.X, "origin_y", origin.Y)

	values := make([]float32, width*height)
	rowErrs := make([]error, height)

	fillRow := func(y, _ int) {
		for x := 0; x < width; x++ {
			p := origin.Add(Vec2{X: float32(x) * step.X, Y: float32(y) * step.Y})
			v, err := s.module.Generate(p)
			if err != nil {
				rowErrs[y] = err
				return
			}
			values[y*width+x] = v
		}
	}

	if s.workers > 0 {
		parallel.WithNumGoroutines(s.workers).For(height, fillRow)
	} else {
		parallel.For(height, fillRow)
	}

	for _, err := range rowErrs {
		if err != nil {
			return nil, fmt.Errorf("sampling plane: %w", err)
		}
	}
	return values, nil
}
