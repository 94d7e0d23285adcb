package chain

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

const headChannelBuffer = 64

// HeadSubscription forwards new-head announcements from the node to a
// handler until the node-side stream fails or Unsubscribe is called.
type HeadSubscription struct {
	sub  ethereum.Subscription
	done chan struct{}
	err  chan error
}

// SubscribeNewBlocks registers handler to be called once per newly announced
// block number, in the order the node delivers them. The node gives no
// gap-filling guarantee; consumers must tolerate missing numbers.
func (c *Client) SubscribeNewBlocks(ctx context.Context, handler func(number uint64)) (*HeadSubscription, error) {
	heads := make(chan *types.Header, headChannelBuffer)
	sub, err := c.backend.SubscribeNewHead(ctx, heads)
	if err != nil {
		return nil, upstream("subscribe new heads", err)
	}

	hs := &HeadSubscription{sub: sub, done: make(chan struct{}), err: make(chan error, 1)}
	go func() {
		defer close(hs.done)
		for {
			select {
			case head := <-heads:
				if head == nil || head.Number == nil {
					continue
				}
				handler(head.Number.Uint64())
			case err := <-sub.Err():
				if err != nil {
					hs.err <- err
				}
				return
			}
		}
	}()
	return hs, nil
}

// Err delivers the terminal stream failure, at most once. It never fires on
// a plain Unsubscribe; consumers must resubscribe after receiving from it.
func (s *HeadSubscription) Err() <-chan error {
	return s.err
}

// Unsubscribe stops delivery and waits for the forwarding goroutine to exit.
// No handler call is in flight once it returns.
func (s *HeadSubscription) Unsubscribe() {
	s.sub.Unsubscribe()
	<-s.done
}
