package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"studybuddy_backend/internal/llm"
)

// maxToolRounds bounds how many times one query may go back to the
// model with tool results before we give up.
const maxToolRounds = 8

// ErrToolRoundsExceeded is returned when a query keeps requesting tools
// past the round limit.
var ErrToolRoundsExceeded = errors.New("agent: tool round limit exceeded")

const defaultMaxTokens = 4096

// Agent answers student queries with an LLM that can call the
// registered tools.
type Agent struct {
	def      Definition
	prompt   string
	provider llm.Provider
	registry *Registry
	tools    []llm.Tool
	sessions *SessionService
	log      *zap.Logger
}

// Reply is one answered query.
type Reply struct {
	Text       string
	SessionID  string
	NewSession bool
}

// New wires an agent from its definition. The definition's tool list
// selects which registered tools the model sees; an empty list exposes
// all of them.
func New(def Definition, prompt string, provider llm.Provider, registry *Registry, sessions *SessionService, log *zap.Logger) (*Agent, error) {
	if provider == nil {
		return nil, errors.New("agent: nil provider")
	}
	if registry == nil {
		return nil, errors.New("agent: nil registry")
	}
	if sessions == nil {
		sessions = NewSessionService()
	}
	if log == nil {
		log = zap.NewNop()
	}
	defs, err := registry.Defs(def.Tools)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", def.Name, err)
	}
	return &Agent{
		def:      def,
		prompt:   prompt,
		provider: provider,
		registry: registry,
		tools:    defs,
		sessions: sessions,
		log:      log,
	}, nil
}

// Name returns the agent's configured name.
func (a *Agent) Name() string { return a.def.Name }

// Description returns the agent's configured description.
func (a *Agent) Description() string { return a.def.Description }

// Tools returns the names of the tools the agent carries.
func (a *Agent) Tools() []string {
	names := make([]string, len(a.tools))
	for i, t := range a.tools {
		names[i] = t.Name
	}
	return names
}

// Sessions returns the agent's session service.
func (a *Agent) Sessions() *SessionService { return a.sessions }

// Respond answers one query. An empty or unknown sessionID starts a
// fresh conversation; a known one continues it.
func (a *Agent) Respond(ctx context.Context, sessionID, query string) (Reply, error) {
	sess, created := a.sessions.Resolve(sessionID)
	reply := Reply{SessionID: sess.ID, NewSession: created}

	ctx = llm.WithPurpose(ctx, "query")
	messages := append(a.sessions.HistoryCopy(sess), llm.Message{
		Role:    llm.RoleUser,
		Content: query,
	})
	turn := []llm.Message{{Role: llm.RoleUser, Content: query}}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.provider.Generate(ctx, llm.Request{
			System:    a.prompt,
			Messages:  messages,
			Tools:     a.tools,
			MaxTokens: defaultMaxTokens,
		})
		if err != nil {
			return reply, fmt.Errorf("generate response: %w", err)
		}

		if len(resp.ToolCalls) == 0 {
			turn = append(turn, llm.Message{Role: llm.RoleAssistant, Content: resp.Text})
			a.sessions.Append(sess, turn...)
			reply.Text = resp.Text
			return reply, nil
		}

		assistant := llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Text,
			ToolCalls: resp.ToolCalls,
		}
		results := llm.Message{
			Role:        llm.RoleUser,
			ToolResults: a.execute(ctx, resp.ToolCalls),
		}
		messages = append(messages, assistant, results)
		turn = append(turn, assistant, results)
	}

	return reply, ErrToolRoundsExceeded
}

// execute runs each requested tool call. Failures become error results
// so the model can recover instead of aborting the turn.
func (a *Agent) execute(ctx context.Context, calls []llm.ToolCall) []llm.ToolResult {
	results := make([]llm.ToolResult, 0, len(calls))
	for _, call := range calls {
		start := time.Now()
		content, err := a.runTool(ctx, call)
		res := llm.ToolResult{ID: call.ID, Name: call.Name, Content: content}
		if err != nil {
			res.Content = err.Error()
			res.IsError = true
			a.log.Warn("tool call failed",
				zap.String("tool", call.Name),
				zap.Error(err),
				zap.Duration("latency", time.Since(start)))
		} else {
			a.log.Debug("tool call",
				zap.String("tool", call.Name),
				zap.Duration("latency", time.Since(start)))
		}
		results = append(results, res)
	}
	return results
}

func (a *Agent) runTool(ctx context.Context, call llm.ToolCall) (string, error) {
	tool, ok := a.registry.Get(call.Name)
	if !ok {
		return "", fmt.Errorf("unknown tool %q", call.Name)
	}
	input := call.Input
	if len(input) == 0 {
		input = []byte("{}")
	}
	return tool.Handler(ctx, input)
}
