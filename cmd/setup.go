package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/mitrenav/pkg/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	Run: func(cmd *cobra.Command, args []string) {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("Welcome to the mitrenav Setup Wizard")
		fmt.Println("------------------------------------")

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		// 1. Layer name
		fmt.Printf("Step 1: Layer name [%s]\n", cfg.Layer.Name)
		fmt.Print("> ")
		scanner.Scan()
		if v := strings.TrimSpace(scanner.Text()); v != "" {
			cfg.Layer.Name = v
		}

		// 2. Layer description
		fmt.Printf("\nStep 2: Layer description [%s]\n", cfg.Layer.Description)
		fmt.Print("> ")
		scanner.Scan()
		if v := strings.TrimSpace(scanner.Text()); v != "" {
			cfg.Layer.Description = v
		}

		// 3. Default spreadsheet
		fmt.Printf("\nStep 3: Default mapping spreadsheet [%s]\n", cfg.DefaultInput)
		fmt.Print("> ")
		scanner.Scan()
		if v := strings.TrimSpace(scanner.Text()); v != "" {
			cfg.DefaultInput = v
		}

		// 4. Worksheet name
		fmt.Printf("\nStep 4: Worksheet name [%s]\n", cfg.Sheet)
		fmt.Print("> ")
		scanner.Scan()
		if v := strings.TrimSpace(scanner.Text()); v != "" {
			cfg.Sheet = v
		}

		// 5. Save Configuration
		fmt.Println("\nStep 5: Saving Configuration...")
		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}

		fmt.Println("------------------------------------")
		fmt.Println("Setup Complete!")
		fmt.Printf("Layer:       %s\n", cfg.Layer.Name)
		fmt.Printf("Spreadsheet: %s\n", cfg.DefaultInput)
		fmt.Println("You can now run 'mitrenav generate'")
	},
}

func init() {
	configCmd.AddCommand(setupCmd)
}
