// Interactive chat runner for the tutoring orchestrator. Talks to the
// service layer directly, printing the full JSON bundle per turn.
// DEMO_MODE=1 replays the scripted scenarios instead.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"ai-tutoring-be/internal/bootstrap"
	"ai-tutoring-be/internal/config"
	"ai-tutoring-be/internal/dto"
)

var demoCases = []struct {
	description string
	userID      string
	input       string
}{
	{
		description: "Frustrated student needing practice",
		userID:      "student123",
		input:       "I'm struggling with calculus derivatives and need practice problems",
	},
	{
		description: "Request for explanation",
		userID:      "student123",
		input:       "give detailed explanation",
	},
	{
		description: "Confident student seeking challenge",
		userID:      "student456",
		input:       "I understand photosynthesis well, give me advanced content",
	},
}

func main() {
	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)

	if cfg.Ai.HFToken == "" {
		color.Yellow("HF_TOKEN not found in environment; AI calls will use fallback extraction.")
	}

	if os.Getenv("DEMO_MODE") == "1" {
		runDemo(container)
		return
	}

	runChat(container)
}

func runDemo(container *bootstrap.Container) {
	color.Cyan("Tutoring Orchestrator Demo")
	fmt.Println(strings.Repeat("=", 50))

	for i, tc := range demoCases {
		color.Green("\nTest %d: %s", i+1, tc.description)
		fmt.Printf("Input: %s\n", tc.input)
		fmt.Println(strings.Repeat("-", 50))

		res, err := container.OrchestratorService.Orchestrate(context.Background(), &dto.OrchestrateRequest{
			UserInput: tc.input,
			UserID:    tc.userID,
		})
		if err != nil {
			color.Red("error: %v", err)
			continue
		}
		printFullJSON(res)
		fmt.Println(strings.Repeat("=", 50))
	}
}

func runChat(container *bootstrap.Container) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("Enter your user_id (default: student_demo): ")
	scanner.Scan()
	userID := strings.TrimSpace(scanner.Text())
	if userID == "" {
		userID = "student_demo"
	}

	color.Cyan("Tutoring Orchestrator Chat - type 'exit' to quit.")
	sessionID := ""

	for {
		color.Set(color.FgGreen)
		fmt.Print("\nYou: ")
		color.Unset()

		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" || input == "exit" || input == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		res, err := container.OrchestratorService.Orchestrate(context.Background(), &dto.OrchestrateRequest{
			UserInput: input,
			UserID:    userID,
			SessionID: sessionID,
		})
		if err != nil {
			color.Red("error: %v", err)
			continue
		}

		printFullJSON(res)

		// Keep session for continuity
		sessionID = res.SessionID
	}
}

func printFullJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("failed to render response: %v", err)
		return
	}
	fmt.Println(string(data))
}
