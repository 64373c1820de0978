package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/models"
)

var useCmd = &cobra.Command{
	Use:   "use [model]",
	Short: "Switch to a model and start the chat app",
	Long:  `Switch to the specified model, save it as the default and immediately start the chat application.`,
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(models.AvailableModels))
		for i, m := range models.AvailableModels {
			names[i] = string(m)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		model, err := models.ParseModelID(args[0])
		if err != nil {
			log.Fatalf("%v (run 'rorichat config models' for the list)", err)
		}

		store, cfg := loadConfig()
		if err := store.Save(cfg.WithModel(model)); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		runChat()
	},
}

// loadConfig exits on a missing home directory but tolerates a broken file.
func loadConfig() (*config.Store, config.SessionConfig) {
	store, err := config.DefaultStore()
	if err != nil {
		log.Fatalf("Failed to locate config: %v", err)
	}
	cfg, err := store.Load()
	if err != nil {
		log.Printf("Warning: %v; using defaults", err)
	}
	return store, cfg
}

func init() {
	rootCmd.AddCommand(useCmd)
}
