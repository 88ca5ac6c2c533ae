package hsqs

import (
	"context"

	"github.com/hypersort/internal/cluster"
	"github.com/hypersort/pkg/collections"
)

// exchange performs the symmetric pair swap for one recursion level. The
// caller has partitioned buf at k (<= pivot on the left). A low rank keeps
// its "less" region and trades its "greater" region for the partner's
// "less"; a high rank does the converse. Both phases use the combined
// send-and-receive primitive, so progress never depends on link buffering.
// Returns the adopted buffer and the caller's color.
func exchange(ctx context.Context, comm *cluster.Comm, buf []int32, k int) ([]int32, int, error) {
	size := comm.Size()
	rank := comm.Rank()

	var color, partner int
	var keep, outgoing []int32
	if rank < size/2 {
		color = 0
		partner = rank + size/2
		keep = buf[:k]
		outgoing = buf[k:]
	} else {
		color = 1
		partner = rank - size/2
		keep = buf[k:]
		outgoing = buf[:k]
	}

	incomingCount, err := comm.SendrecvInt(ctx, partner, cluster.TagLength, len(outgoing))
	if err != nil {
		return nil, 0, err
	}

	scratch := collections.Int32Pool.Get(incomingCount)
	defer collections.Int32Pool.Put(scratch)

	if err := comm.SendrecvInto(ctx, partner, cluster.TagPayload, outgoing,
		partner, cluster.TagPayload, *scratch); err != nil {
		return nil, 0, err
	}

	// Adopt a fresh buffer; the old one and the scratch are dead after
	// this point, and no slice into either survives.
	merged := make([]int32, 0, len(keep)+incomingCount)
	merged = append(merged, keep...)
	merged = append(merged, *scratch...)
	return merged, color, nil
}
