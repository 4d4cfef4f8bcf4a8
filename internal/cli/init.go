package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"prezicap/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create prezicap config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Run interactive wizard (loads existing config as defaults if present)
		cfg, err := config.RunInitWizard()
		if err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("\nSaved %s\n", config.SavePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
