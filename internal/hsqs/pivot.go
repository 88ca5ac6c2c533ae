package hsqs

import (
	"context"
	"slices"

	"github.com/hypersort/internal/cluster"
)

// electPivot computes the group-wide pivot for one recursion level: every
// rank contributes its local median, the group leader picks the median of
// those medians and broadcasts it. The caller must have sorted buf; an
// empty rank contributes 0, which either side of the split tolerates.
func electPivot(ctx context.Context, comm *cluster.Comm, buf []int32) (int32, error) {
	median := int32(0)
	if len(buf) > 0 {
		median = buf[len(buf)/2]
	}

	medians, err := comm.GatherInt(ctx, int(median), 0)
	if err != nil {
		return 0, err
	}

	pivot := 0
	if comm.Rank() == 0 {
		slices.Sort(medians)
		pivot = medians[len(medians)/2]
	}

	pivot, err = comm.BcastInt(ctx, pivot, 0)
	if err != nil {
		return 0, err
	}
	return int32(pivot), nil
}
