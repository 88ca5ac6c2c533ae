package cluster

import (
	"context"

	"github.com/hypersort/pkg/errors"
)

// Tags for the two logical phases of a pair exchange. Collectives use a
// reserved internal range and never collide with these.
const (
	TagLength  = 0
	TagPayload = 1
)

const (
	tagBcast = 100 + iota
	tagGather
	tagScatter
	tagGatherv
	tagReduce
	tagBarrierUp
	tagBarrierDown
	tagSplit
)

// Comm is a group handle: an ordered subset of world ranks that can
// exchange point-to-point messages and perform collectives. Comm ranks are
// 0..Size()-1; rank 0 is the group leader. A Comm is owned by exactly one
// rank goroutine and must not be shared.
type Comm struct {
	world    *World
	rank     int   // my rank within this comm
	members  []int // world rank per comm rank
	isWorld  bool
	released bool
}

// Rank returns the caller's rank within the group.
func (c *Comm) Rank() int {
	return c.rank
}

// Size returns the number of ranks in the group.
func (c *Comm) Size() int {
	return len(c.members)
}

// Release marks the group handle destroyed. Further operations fail.
// Releasing the world communicator is a no-op.
func (c *Comm) Release() {
	if !c.isWorld {
		c.released = true
	}
}

func (c *Comm) check(peer int) error {
	if c.released {
		return errors.New(errors.CodeTransport, "operation on released communicator")
	}
	if peer < 0 || peer >= len(c.members) {
		return errors.Newf(errors.CodeTransport, "rank %d out of range for group of size %d", peer, len(c.members))
	}
	return nil
}

func (c *Comm) checkPeer(peer int) error {
	if err := c.check(peer); err != nil {
		return err
	}
	if peer == c.rank {
		return errors.Newf(errors.CodeTransport, "rank %d cannot message itself", c.rank)
	}
	return nil
}

// Send delivers data to dst under the given tag. The payload is copied, so
// the caller keeps ownership of its slice. Blocks until the link accepts
// the message, the context is canceled, or the world is aborted.
func (c *Comm) Send(ctx context.Context, dst int, tag int, data []int32) error {
	if err := c.checkPeer(dst); err != nil {
		return err
	}

	payload := make([]int32, len(data))
	copy(payload, data)

	link := c.world.links[c.members[c.rank]][c.members[dst]]
	select {
	case link <- message{tag: tag, data: payload}:
		return nil
	case <-c.world.aborted:
		return c.world.abortError()
	case <-ctx.Done():
		return errors.Wrap(errors.CodeTransport, "send canceled", ctx.Err())
	}
}

// Recv receives a message from src under the given tag and returns its
// payload. The returned slice is owned by the caller.
func (c *Comm) Recv(ctx context.Context, src int, tag int) ([]int32, error) {
	if err := c.checkPeer(src); err != nil {
		return nil, err
	}

	link := c.world.links[c.members[src]][c.members[c.rank]]
	select {
	case msg := <-link:
		if msg.tag != tag {
			err := errors.Newf(errors.CodeTransport,
				"tag mismatch from rank %d: want %d, got %d", src, tag, msg.tag)
			c.world.Abort(err)
			return nil, err
		}
		return msg.data, nil
	case <-c.world.aborted:
		return nil, c.world.abortError()
	case <-ctx.Done():
		return nil, errors.Wrap(errors.CodeTransport, "recv canceled", ctx.Err())
	}
}

// RecvInto receives a message from src into buf. The message length must
// equal len(buf); a size mismatch aborts the cohort.
func (c *Comm) RecvInto(ctx context.Context, src int, tag int, buf []int32) error {
	data, err := c.Recv(ctx, src, tag)
	if err != nil {
		return err
	}
	if len(data) != len(buf) {
		err := errors.Newf(errors.CodeTransport,
			"payload size mismatch from rank %d: want %d, got %d", src, len(buf), len(data))
		c.world.Abort(err)
		return err
	}
	copy(buf, data)
	return nil
}

// Sendrecv posts a send to dst and a receive from src simultaneously and
// waits for both. Neither direction depends on link buffering for
// progress, so the call is deadlock-free for arbitrary payload sizes.
func (c *Comm) Sendrecv(ctx context.Context, dst int, sendTag int, sendData []int32, src int, recvTag int) ([]int32, error) {
	sendErr := make(chan error, 1)
	go func() {
		sendErr <- c.Send(ctx, dst, sendTag, sendData)
	}()

	recvData, recvErrVal := c.Recv(ctx, src, recvTag)
	if err := <-sendErr; err != nil {
		return nil, err
	}
	if recvErrVal != nil {
		return nil, recvErrVal
	}
	return recvData, nil
}

// SendrecvInto is Sendrecv with a caller-supplied receive buffer, for
// callers that recycle scratch space. The incoming payload length must
// equal len(recvBuf).
func (c *Comm) SendrecvInto(ctx context.Context, dst int, sendTag int, sendData []int32, src int, recvTag int, recvBuf []int32) error {
	sendErr := make(chan error, 1)
	go func() {
		sendErr <- c.Send(ctx, dst, sendTag, sendData)
	}()

	recvErrVal := c.RecvInto(ctx, src, recvTag, recvBuf)
	if err := <-sendErr; err != nil {
		return err
	}
	return recvErrVal
}

// SendrecvInt exchanges a single integer with a partner rank. Used for the
// length phase of a pair exchange.
func (c *Comm) SendrecvInt(ctx context.Context, partner int, tag int, value int) (int, error) {
	data, err := c.Sendrecv(ctx, partner, tag, []int32{int32(value)}, partner, tag)
	if err != nil {
		return 0, err
	}
	if len(data) != 1 {
		err := errors.Newf(errors.CodeTransport,
			"length exchange with rank %d carried %d values", partner, len(data))
		c.world.Abort(err)
		return 0, err
	}
	return int(data[0]), nil
}

// Split partitions the group by color into disjoint subgroups, preserving
// relative rank order within each color. Every rank of the group must call
// Split; the caller joins the subgroup matching its own color and should
// Release it when done.
func (c *Comm) Split(ctx context.Context, color int) (*Comm, error) {
	colors, err := c.allGatherInt(ctx, color, tagSplit)
	if err != nil {
		return nil, err
	}

	var members []int
	newRank := -1
	for r, col := range colors {
		if col != color {
			continue
		}
		if r == c.rank {
			newRank = len(members)
		}
		members = append(members, c.members[r])
	}

	return &Comm{world: c.world, rank: newRank, members: members}, nil
}

// allGatherInt gathers one integer from every rank and distributes the
// full vector to all of them, leader-rooted.
func (c *Comm) allGatherInt(ctx context.Context, value int, tag int) ([]int, error) {
	gathered, err := c.gatherInt(ctx, value, 0, tag)
	if err != nil {
		return nil, err
	}

	var vec []int32
	if c.rank == 0 {
		vec = make([]int32, len(gathered))
		for i, v := range gathered {
			vec[i] = int32(v)
		}
	} else {
		vec = make([]int32, c.Size())
	}
	if err := c.bcast(ctx, vec, 0, tag); err != nil {
		return nil, err
	}

	out := make([]int, len(vec))
	for i, v := range vec {
		out[i] = int(v)
	}
	return out, nil
}
