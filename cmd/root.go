package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "rorichat",
	Short: "Terminal chat client for Qianfan models",
	Long:  `RoriChat is a terminal chat client for the Baidu Qianfan chat API. Run it without arguments to open the chat window.`,
	Run: func(cmd *cobra.Command, args []string) {
		runChat()
	},
}

// runChat opens the TUI and blocks until the user quits.
func runChat() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Printf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(configCmd)
}
