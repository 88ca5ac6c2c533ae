package hsqs

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hypersort/internal/cluster"
	"github.com/hypersort/pkg/utils"
)

// LevelTrace records one recursion level as observed by one rank, for
// instrumented runs and invariant checks in tests.
type LevelTrace struct {
	Depth     int
	GroupSize int
	GroupRank int
	Color     int
	Pivot     int32
	Buffer    []int32 // copy of the adopted buffer after the exchange
}

// Engine runs the recursive hypercube quicksort on one rank.
type Engine struct {
	logger  utils.Logger
	tracer  trace.Tracer
	onLevel func(LevelTrace)
}

// NewEngine creates an engine. logger may be nil for a silent run;
// onLevel may be nil to skip level tracing.
func NewEngine(logger utils.Logger, onLevel func(LevelTrace)) *Engine {
	if logger == nil {
		logger = &utils.NullLogger{}
	}
	return &Engine{
		logger:  logger,
		tracer:  otel.Tracer("hypersort/hsqs"),
		onLevel: onLevel,
	}
}

// Sort runs the recursion to completion for the calling rank and returns
// the rank's final, locally sorted buffer. On return the concatenation of
// all ranks' buffers in rank order is globally sorted.
func (e *Engine) Sort(ctx context.Context, comm *cluster.Comm, buf []int32) ([]int32, error) {
	return e.sortLevel(ctx, comm, buf, 0)
}

func (e *Engine) sortLevel(ctx context.Context, comm *cluster.Comm, buf []int32, depth int) ([]int32, error) {
	if comm.Size() < 2 {
		LocalSort(buf)
		return buf, nil
	}

	ctx, span := e.tracer.Start(ctx, "hsqs.level", trace.WithAttributes(
		attribute.Int("depth", depth),
		attribute.Int("group.size", comm.Size()),
		attribute.Int("group.rank", comm.Rank()),
	))
	defer span.End()

	// Sorting here both enables the cheap local median and sets up the
	// two-pointer partition.
	LocalSort(buf)

	pivot, err := electPivot(ctx, comm, buf)
	if err != nil {
		return nil, err
	}

	k := PartitionInPlace(buf, pivot)
	merged, color, err := exchange(ctx, comm, buf, k)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("pivot", int(pivot)),
		attribute.Int("buffer.len", len(merged)),
	)
	e.logger.Debug("level %d: size=%d pivot=%d kept=%d buffer=%d",
		depth, comm.Size(), pivot, k, len(merged))

	if e.onLevel != nil {
		snapshot := make([]int32, len(merged))
		copy(snapshot, merged)
		e.onLevel(LevelTrace{
			Depth:     depth,
			GroupSize: comm.Size(),
			GroupRank: comm.Rank(),
			Color:     color,
			Pivot:     pivot,
			Buffer:    snapshot,
		})
	}

	sub, err := comm.Split(ctx, color)
	if err != nil {
		return nil, err
	}
	defer sub.Release()

	return e.sortLevel(ctx, sub, merged, depth+1)
}
