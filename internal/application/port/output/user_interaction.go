package output

type UserInteractionPort interface {
	ShowRound(round, maxRounds int)
	ShowToolStart(toolName, arguments string)
	ShowToolResult(toolName, result string, isError bool)
	ShowAnswer(text string)
}
