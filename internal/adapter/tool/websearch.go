package tool

import (
	"context"
	"fmt"

	"chat-agent/internal/application/port/output"
	"chat-agent/internal/domain/entity"
	"chat-agent/internal/domain/schema"
)

var _ output.ToolPort = (*WebSearchTool)(nil)

type WebSearchTool struct {
	search output.SearchPort
	logger output.LoggerPort
}

func NewWebSearchTool(search output.SearchPort, logger output.LoggerPort) *WebSearchTool {
	return &WebSearchTool{search: search, logger: logger}
}

func (t *WebSearchTool) Name() entity.ToolName { return entity.ToolWebSearch }

func (t *WebSearchTool) Description() string {
	return "Searches the web and returns a short synopsis of the most relevant result " +
		"with its source name and URL. Use for current events and facts you don't know."
}

func (t *WebSearchTool) Parameters() schema.Schema {
	return schema.Object(map[string]schema.Property{
		"query": {
			Type:        "string",
			Description: "The search query",
		},
	}, "query")
}

func (t *WebSearchTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	query, _ := args["query"].(string)

	result, err := t.search.Search(ctx, query)
	if err != nil {
		return "", err
	}

	t.logger.Debug("Search completed", "query", query, "url", result.URL)
	return fmt.Sprintf("%s\n%s\nSource: %s (%s)", result.Title, result.Synopsis, result.Source, result.URL), nil
}
