package reddypet

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"reddypet/internal/pet"
	"reddypet/internal/ui"
)

var (
	configPath string
	storeKind  string
	statePath  string
)

var rootCmd = &cobra.Command{
	Use:          "reddypet",
	Short:        "reddypet is a tiny virtual pet that lives in your terminal",
	Long:         "reddypet keeps a Tamagotchi-style pet whose hunger, fun, cleanliness and energy drift while you are away.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return withController(cmd.Context(), cfg, func(ctrl *pet.Controller) error {
			clicker := ui.NewClicker(cfg.UI.Sound, openTTY)
			m := ui.NewModel(cmd.Context(), ctrl, clicker, cfg.Pet.TickInterval)
			return ui.Run(m, tea.WithAltScreen())
		})
	},
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Snapshot store: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Path to the snapshot file or SQLite database")
}
