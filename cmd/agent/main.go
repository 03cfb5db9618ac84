package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"chat-agent/internal/di"
	"chat-agent/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	container, err := di.NewContainer(di.Config{
		OpenAIAPIKey:  envService.MustGet("OPENAI_API_KEY"),
		OpenAIBaseURL: envService.Get("OPENAI_BASE_URL"),
		Model:         envService.GetWithDefault("OPENAI_MODEL_NAME", "gpt-4o-mini"),
		TavilyAPIKey:  envService.Get("TAVILY_API_KEY"),
		MaxToolRounds: envService.GetInt("MAX_TOOL_ROUNDS", 8),
		ModelTimeout:  envService.GetDuration("MODEL_TIMEOUT", 60*time.Second),
		Debug:         envService.GetBool("DEBUG", false),
	})
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	turnTimeout := envService.GetDuration("TURN_TIMEOUT", 3*time.Minute)

	fmt.Println("Tool Calling Bot")
	fmt.Println("Available tools: calculator, current time, web search")
	fmt.Println("Type 'quit' to exit, 'help' for commands")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("You: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF (Ctrl-D) ends the session.
			fmt.Println("\nGoodbye!")
			return
		}

		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return
		case "help":
			printHelp()
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		result, err := container.Session.Submit(ctx, input)
		cancel()
		if err != nil {
			container.Logger.Error("Turn failed", "error", err)
			fmt.Printf("Unexpected error: %v\nContinuing...\n\n", err)
			continue
		}

		container.UI.ShowAnswer(result.Answer)
	}
}

func printHelp() {
	fmt.Println("\nCommands:")
	fmt.Println("- Ask math questions: 'What's 15% of 847?'")
	fmt.Println("- Ask for time: 'What time is it in Tokyo?'")
	fmt.Println("- Search the web: 'Search for Go tutorials'")
	fmt.Println("- Type 'quit' to exit")
	fmt.Println()
}
