package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"chat-agent/internal/di"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
}

type wireToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type wireRequest struct {
	Model    string        `json:"model"`
	Messages []wireMessage `json:"messages"`
	Tools    []struct {
		Type     string `json:"type"`
		Function struct {
			Name string `json:"name"`
		} `json:"function"`
	} `json:"tools"`
}

func completionWithToolCall(id, name, arguments string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "gpt-4o-mini",
		"choices": [{
			"index": 0,
			"finish_reason": "tool_calls",
			"message": {
				"role": "assistant",
				"content": "",
				"tool_calls": [{
					"id": %q,
					"type": "function",
					"function": {"name": %q, "arguments": %q}
				}]
			}
		}]
	}`, id, name, arguments)
}

func completionWithText(text string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-2",
		"object": "chat.completion",
		"model": "gpt-4o-mini",
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": %q}
		}]
	}`, text)
}

// newScriptedModel runs an OpenAI-compatible endpoint that replays canned
// completion bodies and captures each request it received.
func newScriptedModel(t *testing.T, bodies []string) (*httptest.Server, *[]wireRequest) {
	t.Helper()
	var seen []wireRequest
	call := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req wireRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)

		if call >= len(bodies) {
			t.Error("model queried more often than scripted")
			http.Error(w, "out of script", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, bodies[call])
		call++
	}))
	return server, &seen
}

func newTestContainer(t *testing.T, baseURL string) *di.Container {
	t.Helper()
	// keep session log files out of the repo
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	container, err := di.NewContainer(di.Config{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: baseURL + "/v1",
		Model:         "gpt-4o-mini",
		MaxToolRounds: 4,
	})
	require.NoError(t, err)
	t.Cleanup(container.Close)
	return container
}

func TestSession_CalculatorRoundTrip(t *testing.T) {
	server, seen := newScriptedModel(t, []string{
		completionWithToolCall("call_abc", "calculator", `{"expression": "847*0.15"}`),
		completionWithText("15% of 847 is 127.05."),
	})
	defer server.Close()

	container := newTestContainer(t, server.URL)

	result, err := container.Session.Submit(context.Background(), "What is 15% of 847?")
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	assert.Contains(t, result.Answer, "127.05")

	// The first request carried the full tool manifest.
	require.Len(t, *seen, 2)
	first := (*seen)[0]
	var names []string
	for _, tool := range first.Tools {
		names = append(names, tool.Function.Name)
	}
	assert.Equal(t, []string{"calculator", "get_current_time", "web_search"}, names)

	// The second request fed the tool result back under the model's call ID.
	second := (*seen)[1]
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Equal(t, "call_abc", last.ToolCallID)
	assert.Equal(t, "127.05", last.Content)
}

func TestSession_UnknownTimezoneSurvives(t *testing.T) {
	server, seen := newScriptedModel(t, []string{
		completionWithToolCall("call_tz", "get_current_time", `{"timezone": "Mars/Colony1"}`),
		completionWithText("I couldn't resolve that timezone, sorry."),
	})
	defer server.Close()

	container := newTestContainer(t, server.URL)

	result, err := container.Session.Submit(context.Background(), "What time is it in Mars/Colony1?")
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	assert.Contains(t, result.Answer, "couldn't resolve")

	// The failure reached the model as a failed tool result, not a crash.
	require.Len(t, *seen, 2)
	second := (*seen)[1]
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Equal(t, "call_tz", last.ToolCallID)
	assert.True(t, strings.HasPrefix(last.Content, "Error:"), "content: %s", last.Content)
	assert.Contains(t, last.Content, "unknown timezone")
}

func TestSession_ModelOutageDegradesGracefully(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	container := newTestContainer(t, server.URL)

	result, err := container.Session.Submit(context.Background(), "hello")
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Answer)
}
