package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/xtreme16/asri/internal/agent"
)

// runPlain is the non-TUI read loop for piped input and scripting: one
// prompt, one utterance, one reply per turn.
func runPlain(engine *agent.Engine) error {
	fmt.Println("=== Selamat datang di ASRI ===")
	fmt.Println(agent.WelcomeText)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nInput: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		if agent.IsExit(input) {
			fmt.Println("ASRI: " + agent.FarewellText)
			break
		}

		fmt.Println("ASRI: " + engine.Respond(input))
	}
	return scanner.Err()
}
