package userinteraction

import (
	"encoding/json"
	"fmt"
	"strings"

	"chat-agent/internal/application/port/output"

	"github.com/fatih/color"
)

var _ output.UserInteractionPort = (*Console)(nil)

// Console renders tool-call progress and answers to the terminal.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) ShowRound(round, maxRounds int) {
	if round == 1 {
		return
	}
	dim := color.New(color.Faint)
	dim.Printf("  round %d/%d\n", round, maxRounds)
}

func (c *Console) ShowToolStart(toolName, arguments string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Printf("\n%s %s\n", toolIcon(toolName), toolName)

	if summary := summarizeArguments(arguments); summary != "" {
		dim := color.New(color.Faint)
		dim.Printf("   %s\n", summary)
	}
}

func (c *Console) ShowToolResult(toolName, result string, isError bool) {
	if isError {
		red := color.New(color.FgRed)
		red.Print("   error: ")
		color.New(color.Faint).Println(truncate(result, 300))
		return
	}

	green := color.New(color.FgGreen)
	green.Printf("   %s\n", truncate(firstLine(result), 120))
}

func (c *Console) ShowAnswer(text string) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Print("\nBot: ")
	fmt.Printf("%s\n\n", text)
}

func toolIcon(toolName string) string {
	icons := map[string]string{
		"calculator":       "🧮",
		"get_current_time": "🕐",
		"web_search":       "🔎",
	}
	if icon, ok := icons[toolName]; ok {
		return icon
	}
	return "🔧"
}

// summarizeArguments extracts the single string parameter every built-in tool
// takes; other shapes fall back to the raw JSON.
func summarizeArguments(arguments string) string {
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return truncate(arguments, 80)
	}
	for _, key := range []string{"expression", "timezone", "query"} {
		if v, ok := args[key].(string); ok {
			return fmt.Sprintf("%s: %s", key, truncate(v, 80))
		}
	}
	return truncate(arguments, 80)
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
