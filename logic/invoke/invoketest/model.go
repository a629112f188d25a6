// Package invoketest provides a scripted chat model for tests.
package invoketest

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Model replies with Replies in order (the last one repeats) or fails with Err.
// Block, when set, is waited on before replying.
type Model struct {
	mu      sync.Mutex
	Replies []string
	Err     error
	Block   chan struct{}

	calls int
	last  []*schema.Message
}

func (m *Model) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.last = input
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Replies) == 0 {
		return schema.AssistantMessage("", nil), nil
	}
	idx := m.calls - 1
	if idx >= len(m.Replies) {
		idx = len(m.Replies) - 1
	}
	return schema.AssistantMessage(m.Replies[idx], nil), nil
}

func (m *Model) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("invoketest: stream not supported")
}

// Calls reports how many times Generate ran.
func (m *Model) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastPrompt concatenates the contents of the last request's messages.
func (m *Model) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out string
	for _, msg := range m.last {
		out += msg.Content + "\n"
	}
	return out
}
