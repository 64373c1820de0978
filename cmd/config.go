package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/models"
)

var (
	labelColor = color.New(color.FgHiBlack)
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change the saved configuration",
	Long:  `Inspect and change the API token and default model stored in the config file.`,
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg := loadConfig()

		labelColor.Print("Config file: ")
		fmt.Println(store.Path())
		labelColor.Print("Model:       ")
		fmt.Println(cfg.Model)
		labelColor.Print("API token:   ")
		if cfg.HasCredential() {
			okColor.Println(maskToken(cfg.GetCredential()))
		} else {
			warnColor.Println("not set")
		}
	},
}

var pathConfigCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := config.DefaultStore()
		if err != nil {
			log.Fatalf("Failed to locate config: %v", err)
		}
		fmt.Println(store.Path())
	},
}

var tokenConfigCmd = &cobra.Command{
	Use:   "token",
	Short: "Set or clear the API token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg := loadConfig()

		token, err := readToken(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read token: %v", err)
		}

		cfg = cfg.WithCredential(token)
		if err := store.Save(cfg); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		if cfg.HasCredential() {
			okColor.Println("API token saved")
		} else {
			warnColor.Println("API token cleared")
		}
	},
}

var modelConfigCmd = &cobra.Command{
	Use:   "model [model]",
	Short: "Set the default model",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg := loadConfig()

		var model models.ModelID
		if len(args) > 0 {
			var err error
			model, err = models.ParseModelID(args[0])
			if err != nil {
				log.Fatalf("%v", err)
			}
		} else {
			prompt := promptui.Select{
				Label:     "Select model",
				Items:     models.AvailableModels,
				CursorPos: max(0, cfg.Model.Index()),
				Size:      10,
			}
			i, _, err := prompt.Run()
			if err != nil {
				log.Fatalf("Selection failed: %v", err)
			}
			model = models.ModelAt(i)
		}

		if err := store.Save(cfg.WithModel(model)); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		okColor.Printf("Default model set to %s\n", model)
	},
}

var modelsConfigCmd = &cobra.Command{
	Use:   "models",
	Short: "List the supported models",
	Run: func(cmd *cobra.Command, args []string) {
		_, cfg := loadConfig()
		for _, m := range models.AvailableModels {
			if m == cfg.Model {
				okColor.Printf("* %s\n", m)
				continue
			}
			fmt.Printf("  %s\n", m)
		}
	},
}

// readToken prompts with a masked field on a terminal and reads one line
// otherwise, so the token can be piped in.
func readToken(in *os.File) (string, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return readLine(in)
	}
	apiKeyPrompt := promptui.Prompt{
		Label: "API token (empty to clear)",
		Mask:  '*',
	}
	return apiKeyPrompt.Run()
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// maskToken shows only the last four characters.
func maskToken(token string) string {
	runes := []rune(token)
	if len(runes) <= 4 {
		return "****"
	}
	return "****" + string(runes[len(runes)-4:])
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(pathConfigCmd)
	configCmd.AddCommand(tokenConfigCmd)
	configCmd.AddCommand(modelConfigCmd)
	configCmd.AddCommand(modelsConfigCmd)
}
