// Package invoke wraps one schema-constrained call to the chat model.
package invoke

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"mapca-proposal/logic/shape"
	"mapca-proposal/logs"
)

// ErrNoResult is returned when the model answers with nothing usable.
var ErrNoResult = errors.New("o modelo não retornou resultado")

const outputInstruction = `Responda somente com um único objeto JSON válido, sem markdown e sem texto adicional.
O objeto DEVE seguir exatamente este JSON Schema (todos os campos são obrigatórios; use "" quando a informação não existir):
`

// Invoker performs single calls; it never retries.
type Invoker struct {
	chatModel model.BaseChatModel
	timeout   time.Duration
}

func New(chatModel model.BaseChatModel, timeout time.Duration) *Invoker {
	return &Invoker{chatModel: chatModel, timeout: timeout}
}

// Call renders tmpl (Go template syntax) with values, calls the model once and
// returns a T that passed shape validation. Failures are ErrNoResult, a
// *shape.Error, or the provider error wrapped.
func Call[T any](ctx context.Context, inv *Invoker, name, tmpl string, values map[string]any) (*T, error) {
	contract, err := shape.Describe[T]()
	if err != nil {
		return nil, err
	}

	msgs, err := prompt.FromMessages(schema.GoTemplate, schema.UserMessage(tmpl)).Format(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("render prompt %s: %w", name, err)
	}
	msgs = append([]*schema.Message{schema.SystemMessage(outputInstruction + contract)}, msgs...)

	if inv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := inv.chatModel.Generate(ctx, msgs)
	if err != nil {
		return nil, fmt.Errorf("chamada ao modelo (%s): %w", name, err)
	}
	logs.L().Debugf(">>> [LLM] %s respondeu em %v", name, time.Since(start))

	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return nil, ErrNoResult
	}
	raw := CleanJSON(resp.Content)
	logs.L().Debugf(">>> [LLM Raw Response] %s: %s", name, raw)

	out, err := shape.Decode[T]([]byte(raw))
	if err != nil {
		logs.L().Warnw("[LLM] resposta rejeitada", "prompt", name, "error", err)
		return nil, err
	}
	return out, nil
}

// CleanJSON strips code fences and any prose around the outermost JSON object.
func CleanJSON(content string) string {
	raw := strings.TrimSpace(content)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		return raw[start : end+1]
	}
	return strings.TrimSpace(raw)
}
