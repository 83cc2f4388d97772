package llm

import (
	"encoding/json"
	"testing"
)

func TestBuildGeminiContents_ToolRoundTrip(t *testing.T) {
	msgs := []Message{
		{Role: RoleUser, Content: "what is 2+2?"},
		{
			Role:    RoleAssistant,
			Content: "Let me check.",
			ToolCalls: []ToolCall{{
				ID:    "call_1",
				Name:  "calculate",
				Input: json.RawMessage(`{"expression":"2+2"}`),
			}},
		},
		{
			Role: RoleUser,
			ToolResults: []ToolResult{{
				ID:      "call_1",
				Name:    "calculate",
				Content: "2+2 = 4",
			}},
		},
	}

	contents, err := buildGeminiContents(msgs)
	if err != nil {
		t.Fatalf("buildGeminiContents: %v", err)
	}
	if len(contents) != 3 {
		t.Fatalf("got %d contents, want 3", len(contents))
	}

	if contents[0].Role != "user" || contents[1].Role != "model" || contents[2].Role != "user" {
		t.Errorf("roles = %q, %q, %q", contents[0].Role, contents[1].Role, contents[2].Role)
	}

	assistant := contents[1]
	if len(assistant.Parts) != 2 {
		t.Fatalf("assistant parts = %d, want text + function call", len(assistant.Parts))
	}
	fc := assistant.Parts[1].FunctionCall
	if fc == nil || fc.Name != "calculate" || fc.ID != "call_1" {
		t.Fatalf("function call = %+v", fc)
	}
	if fc.Args["expression"] != "2+2" {
		t.Errorf("args = %v", fc.Args)
	}

	fr := contents[2].Parts[0].FunctionResponse
	if fr == nil || fr.Name != "calculate" || fr.ID != "call_1" {
		t.Fatalf("function response = %+v", fr)
	}
	if fr.Response["result"] != "2+2 = 4" {
		t.Errorf("response payload = %v", fr.Response)
	}
}

func TestBuildGeminiContents_EmptyToolInput(t *testing.T) {
	msgs := []Message{{
		Role:      RoleAssistant,
		ToolCalls: []ToolCall{{ID: "c1", Name: "get_student_profile"}},
	}}

	contents, err := buildGeminiContents(msgs)
	if err != nil {
		t.Fatalf("buildGeminiContents: %v", err)
	}
	if fc := contents[0].Parts[0].FunctionCall; fc == nil || fc.Name != "get_student_profile" {
		t.Fatalf("function call = %+v", fc)
	}
}

func TestBuildGeminiContents_MalformedToolInput(t *testing.T) {
	msgs := []Message{{
		Role: RoleAssistant,
		ToolCalls: []ToolCall{{
			ID:    "c1",
			Name:  "calculate",
			Input: json.RawMessage(`{"expression":`),
		}},
	}}

	if _, err := buildGeminiContents(msgs); err == nil {
		t.Fatal("expected error for malformed tool call arguments")
	}
}
