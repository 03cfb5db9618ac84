package entity

type ToolName string

const (
	ToolCalculator  ToolName = "calculator"
	ToolCurrentTime ToolName = "get_current_time"
	ToolWebSearch   ToolName = "web_search"
)

func (t ToolName) String() string {
	return string(t)
}
