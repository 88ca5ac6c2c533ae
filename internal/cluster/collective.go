package cluster

import (
	"context"

	"github.com/hypersort/pkg/errors"
)

// Collectives are leader-rooted over the point-to-point links. Every rank
// of the group must call each collective. Only Barrier waits for all ranks
// to enter; in the others a rank returns once its own part is done, which
// for a sending rank is when the link has accepted its message.

// Bcast distributes buf from root to every rank of the group. On root the
// buffer is the source; on other ranks it is filled in place and must have
// the same length on every rank.
func (c *Comm) Bcast(ctx context.Context, buf []int32, root int) error {
	return c.bcast(ctx, buf, root, tagBcast)
}

// BcastInt broadcasts a single integer from root and returns it.
func (c *Comm) BcastInt(ctx context.Context, value int, root int) (int, error) {
	buf := []int32{int32(value)}
	if err := c.bcast(ctx, buf, root, tagBcast); err != nil {
		return 0, err
	}
	return int(buf[0]), nil
}

func (c *Comm) bcast(ctx context.Context, buf []int32, root int, tag int) error {
	if err := c.check(root); err != nil {
		return err
	}

	if c.rank == root {
		for r := 0; r < c.Size(); r++ {
			if r == root {
				continue
			}
			if err := c.Send(ctx, r, tag, buf); err != nil {
				return err
			}
		}
		return nil
	}
	return c.RecvInto(ctx, root, tag, buf)
}

// GatherInt collects one integer from every rank on root, in rank order.
// Non-root ranks receive nil.
func (c *Comm) GatherInt(ctx context.Context, value int, root int) ([]int, error) {
	return c.gatherInt(ctx, value, root, tagGather)
}

func (c *Comm) gatherInt(ctx context.Context, value int, root int, tag int) ([]int, error) {
	if err := c.check(root); err != nil {
		return nil, err
	}

	if c.rank != root {
		return nil, c.Send(ctx, root, tag, []int32{int32(value)})
	}

	out := make([]int, c.Size())
	out[root] = value
	for r := 0; r < c.Size(); r++ {
		if r == root {
			continue
		}
		var one [1]int32
		if err := c.RecvInto(ctx, r, tag, one[:]); err != nil {
			return nil, err
		}
		out[r] = int(one[0])
	}
	return out, nil
}

// Scatter splits sendBuf on root into equal chunks of the given length and
// delivers the r-th chunk to rank r. Every rank receives a freshly owned
// slice of chunk elements; sendBuf is only read on root.
func (c *Comm) Scatter(ctx context.Context, sendBuf []int32, chunk int, root int) ([]int32, error) {
	if err := c.check(root); err != nil {
		return nil, err
	}
	if chunk < 0 {
		return nil, errors.Newf(errors.CodeInvalidArgs, "negative scatter chunk %d", chunk)
	}

	if c.rank == root {
		if len(sendBuf) != chunk*c.Size() {
			err := errors.Newf(errors.CodeConsistency,
				"scatter buffer holds %d elements, want %d", len(sendBuf), chunk*c.Size())
			c.world.Abort(err)
			return nil, err
		}
		for r := 0; r < c.Size(); r++ {
			if r == root {
				continue
			}
			if err := c.Send(ctx, r, tagScatter, sendBuf[r*chunk:(r+1)*chunk]); err != nil {
				return nil, err
			}
		}
		own := make([]int32, chunk)
		copy(own, sendBuf[root*chunk:(root+1)*chunk])
		return own, nil
	}

	recv := make([]int32, chunk)
	if err := c.RecvInto(ctx, root, tagScatter, recv); err != nil {
		return nil, err
	}
	return recv, nil
}

// Gatherv reassembles variable-length per-rank contributions on root, in
// rank order. Root passes the expected counts (one per rank, matching what
// GatherInt of the lengths returned); non-root ranks pass nil. The
// assembled buffer is returned on root, nil elsewhere.
func (c *Comm) Gatherv(ctx context.Context, local []int32, counts []int, root int) ([]int32, error) {
	if err := c.check(root); err != nil {
		return nil, err
	}

	if c.rank != root {
		return nil, c.Send(ctx, root, tagGatherv, local)
	}

	if len(counts) != c.Size() {
		err := errors.Newf(errors.CodeConsistency,
			"gatherv counts has %d entries for group of size %d", len(counts), c.Size())
		c.world.Abort(err)
		return nil, err
	}

	displs := make([]int, c.Size())
	total := 0
	for r, n := range counts {
		displs[r] = total
		total += n
	}

	out := make([]int32, total)
	if counts[root] != len(local) {
		err := errors.Newf(errors.CodeConsistency,
			"gatherv root count %d does not match local length %d", counts[root], len(local))
		c.world.Abort(err)
		return nil, err
	}
	copy(out[displs[root]:], local)

	for r := 0; r < c.Size(); r++ {
		if r == root {
			continue
		}
		if err := c.RecvInto(ctx, r, tagGatherv, out[displs[r]:displs[r]+counts[r]]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReduceSumInt sums one integer contribution per rank on root. Non-root
// ranks receive 0.
func (c *Comm) ReduceSumInt(ctx context.Context, value int, root int) (int, error) {
	parts, err := c.gatherInt(ctx, value, root, tagReduce)
	if err != nil {
		return 0, err
	}
	if c.rank != root {
		return 0, nil
	}

	total := 0
	for _, v := range parts {
		total += v
	}
	return total, nil
}

// Barrier blocks until every rank of the group has entered it.
func (c *Comm) Barrier(ctx context.Context) error {
	if _, err := c.gatherInt(ctx, 0, 0, tagBarrierUp); err != nil {
		return err
	}
	var none [0]int32
	return c.bcast(ctx, none[:], 0, tagBarrierDown)
}
