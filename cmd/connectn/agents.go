package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectn/internal/agent"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List available agents",
	Long:  `Display all registered agents and the heuristics the minimax agent can use.`,
	Run:   runAgents,
}

func runAgents(cmd *cobra.Command, args []string) {
	agents := agent.List()

	fmt.Println("Available agents:")
	fmt.Println()

	maxIDLen := 0
	for _, a := range agents {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	for _, a := range agents {
		padding := strings.Repeat(" ", maxIDLen-len(a.ID))
		fmt.Printf("  %s%s  %s\n", a.ID, padding, a.Name)
	}

	fmt.Println()
	fmt.Printf("Heuristics: %s (default %s)\n", strings.Join(agent.Heuristics(), ", "), agent.DefaultHeuristic)
	fmt.Println()
	fmt.Println("Run 'connectn play <first> <second>' to start a match.")
}
