package main

import (
	"context"
	"fmt"
	"strings"

	"online-llm/internal/llm"
)

// Demonstrates the three wrapper calls against the live API. Each stage
// prints its error and moves on so one failure doesn't hide the others.
// Requires GEMINI_API_KEY in the environment.
func main() {
	ctx := context.Background()

	// 1. List available models
	models, err := llm.ListAvailableModels(ctx, llm.Config{})
	if err != nil {
		fmt.Printf("Error listing models: %v\n", err)
	} else {
		fmt.Println("Available models:")
		for _, model := range models {
			fmt.Printf("  - %s\n", model)
		}
	}
	fmt.Println("\n" + strings.Repeat("=", 50) + "\n")

	// 2. Complete response
	text, err := llm.GetCompleteResponse(ctx, "Tell me a short joke", llm.Config{}, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Println("Complete response:")
		fmt.Println(text)
	}
	fmt.Println("\n" + strings.Repeat("=", 50) + "\n")

	// 3. Streaming response
	fmt.Println("Streaming response:")
	stream, err := llm.GetStreamResponse(ctx, "Write a short story about a robot", llm.Config{}, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for chunk := range stream {
		if chunk.Err != nil {
			fmt.Printf("\nError: %v\n", chunk.Err)
			break
		}
		fmt.Print(chunk.Text)
	}
	fmt.Println()
}
