package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Prompt is a pending confirmation dialog waiting for the user.
type Prompt struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Broker matches confirmation requests with their answers. Ask blocks the
// requesting goroutine until Answer arrives or the context is done.
type Broker struct {
	mu      sync.Mutex
	pending map[string]chan bool
	prompts map[string]Prompt
}

func NewBroker() *Broker {
	return &Broker{
		pending: make(map[string]chan bool),
		prompts: make(map[string]Prompt),
	}
}

// Ask suspends until the user accepts or dismisses the prompt. A cancelled
// context counts as a dismissal and also returns the context error.
func (b *Broker) Ask(ctx context.Context, title, message string) (bool, error) {
	p := Prompt{ID: uuid.New().String(), Title: title, Message: message}
	ch := make(chan bool, 1)

	b.mu.Lock()
	b.pending[p.ID] = ch
	b.prompts[p.ID] = p
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, p.ID)
		delete(b.prompts, p.ID)
		b.mu.Unlock()
	}()

	select {
	case accepted := <-ch:
		return accepted, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Answer resolves a pending prompt and reports whether it was still open.
func (b *Broker) Answer(id string, accepted bool) bool {
	b.mu.Lock()
	ch, ok := b.pending[id]
	if ok {
		delete(b.pending, id)
		delete(b.prompts, id)
	}
	b.mu.Unlock()

	if !ok {
		return false
	}
	ch <- accepted
	return true
}

// Pending lists the prompts currently waiting for the user.
func (b *Broker) Pending() []Prompt {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Prompt, 0, len(b.prompts))
	for _, p := range b.prompts {
		out = append(out, p)
	}
	return out
}
