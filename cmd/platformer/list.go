package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available layouts",
	Long:  `Shows a list of all built-in platform layouts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Title", "Platforms")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "---------")

	for _, info := range layouts {
		l, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %-10s  %d\n", maxIDLen, info.ID, info.Title, len(l.Platforms))
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a layout.")
}
