package tool

import (
	"context"
	"fmt"
	"time"

	"chat-agent/internal/application/port/output"
	"chat-agent/internal/domain/entity"
	"chat-agent/internal/domain/schema"
)

var _ output.ToolPort = (*ClockTool)(nil)

// ClockTool reports the current wall-clock time in a requested IANA zone.
// The clock source is injected so tests can pin the instant.
type ClockTool struct {
	now    func() time.Time
	logger output.LoggerPort
}

func NewClockTool(now func() time.Time, logger output.LoggerPort) *ClockTool {
	if now == nil {
		now = time.Now
	}
	return &ClockTool{now: now, logger: logger}
}

func (t *ClockTool) Name() entity.ToolName { return entity.ToolCurrentTime }

func (t *ClockTool) Description() string {
	return "Returns the current date and time in a given IANA timezone, " +
		"e.g. \"Asia/Tokyo\" or \"Europe/Berlin\"."
}

func (t *ClockTool) Parameters() schema.Schema {
	return schema.Object(map[string]schema.Property{
		"timezone": {
			Type:        "string",
			Description: "IANA timezone name, e.g. \"America/New_York\"",
		},
	}, "timezone")
}

func (t *ClockTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	name, _ := args["timezone"].(string)

	// LoadLocation treats "" as UTC and "Local" as the host zone; both would
	// be a silent fallback, so they are rejected up front.
	loc, err := time.LoadLocation(name)
	if name == "" || name == "Local" || err != nil {
		return "", fmt.Errorf("%w: %q is not a recognized IANA timezone", entity.ErrUnknownTimezone, name)
	}

	local := t.now().In(loc)
	t.logger.Debug("Clock resolved", "timezone", name)
	return local.Format("Monday, 2 January 2006, 15:04:05 MST (UTC-07:00)"), nil
}
