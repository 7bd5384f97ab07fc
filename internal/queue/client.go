package queue

import "context"

// Client hands generation jobs to the queue backend. The API enqueues
// through it; cmd/worker consumes on the other side.
type Client interface {
	Send(ctx context.Context, msg Message) error
}
