// Package chat implements the interactive conversational session.
package chat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/budget-chat/cmd/root"
	"fjacquet/budget-chat/internal/agent"
)

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive budgeting session",
	Long: `Start a conversational session. Type 'help' for the list of
commands and 'quit' to save and exit.`,
	Run: chatFunc,
}

func chatFunc(cmd *cobra.Command, args []string) {
	session, err := root.BuildSession()
	if err != nil {
		root.Log.Fatalf("Failed to start session: %v", err)
	}
	a := session.Agent

	if n := a.Ledger().Len(); n > 0 {
		fmt.Printf("Loaded %d categories from previous session.\n", n)
	}

	fmt.Println("Budget chat (type 'help' for commands, 'quit' to exit)")
	if err := RunLoop(a, os.Stdin, os.Stdout); err != nil {
		root.Log.Fatalf("Session failed: %v", err)
	}
}

// RunLoop reads lines from in, hands each to the agent and prints the
// response to out. It stops on EOF or when the agent returns the farewell
// response; detecting that exact string is part of the agent's contract.
func RunLoop(a *agent.Agent, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		resp, err := a.Handle(text)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, resp)
		if resp == agent.Farewell {
			return nil
		}
	}
	return scanner.Err()
}
