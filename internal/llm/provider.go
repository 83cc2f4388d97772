package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive text, structured
// JSON, or a set of tool calls to execute.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured response.
	// When the request carries Tools, the response may contain ToolCalls
	// instead of (or alongside) text content. When the request's Schema
	// field is set, the provider returns JSON conforming to that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history, including any earlier
	// tool calls and their results.
	Messages []Message

	// Tools the model may invoke. When the model decides to call one,
	// the response StopReason is "tool_use" and ToolCalls is populated.
	Tools []Tool

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	// Mutually exclusive with Tools.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
// An assistant turn that requested tools carries ToolCalls, and the
// following user turn carries the matching ToolResults.
type Message struct {
	Role        Role
	Content     string
	ToolCalls   []ToolCall
	ToolResults []ToolResult
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Tool describes a function the model may call.
type Tool struct {
	// Name is the tool identifier, e.g. "record_study_session".
	Name string

	// Description tells the model when to use this tool.
	Description string

	// InputSchema is the JSON Schema for the tool's arguments as a map.
	InputSchema map[string]any
}

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	// ID correlates this call with its ToolResult.
	ID string

	// Name is the tool being invoked.
	Name string

	// Input is the JSON-encoded arguments.
	Input json.RawMessage
}

// ToolResult carries the outcome of an executed tool call back to the model.
type ToolResult struct {
	// ID matches the ToolCall that produced this result.
	ID string

	// Name is the tool that was invoked.
	Name string

	// Content is the tool output, serialized as text.
	Content string

	// IsError marks the result as a failed invocation.
	IsError bool
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "progress-summary".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response.
	Content json.RawMessage

	// Text is the plain-text portion of the response, if any.
	Text string

	// ToolCalls holds the tool invocations the model requested.
	// Non-empty only when the request offered Tools.
	ToolCalls []ToolCall

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "tool_use", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
