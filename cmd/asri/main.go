package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtreme16/asri/internal/agent"
	"github.com/xtreme16/asri/internal/config"
	"github.com/xtreme16/asri/internal/hr"
	"github.com/xtreme16/asri/internal/logging"
	"github.com/xtreme16/asri/internal/store"
	"github.com/xtreme16/asri/internal/tui"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		dataDir    string
		plain      bool
	)

	cmd := &cobra.Command{
		Use:           "asri",
		Short:         "Asisten SDM interaktif di terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A local .env may carry ASRI_* overrides.
			_ = godotenv.Load()

			var (
				cfg *config.Config
				err error
			)
			if configPath != "" {
				cfg, err = config.LoadFrom(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			if cfg == nil {
				cfg = config.DefaultConfig()
			}
			cfg.ApplyEnv()
			if dataDir != "" {
				cfg.DataDir = dataDir
			}

			logger, err := logging.New(cfg.LogPath())
			if err != nil {
				return fmt.Errorf("membuka file log: %w", err)
			}
			defer logger.Sync()

			logger = logger.With(zap.String("session", uuid.NewString()))
			logger.Info("session started", zap.String("data_dir", cfg.DataDir))

			st, err := store.Open(cfg.DataDir, logger)
			if err != nil {
				return fmt.Errorf("memuat data karyawan: %w", err)
			}

			engine := agent.New(st, hr.NewCSVFunctions(cfg.DataDir), logger)

			if plain {
				err = runPlain(engine)
			} else {
				app := tui.NewApp(engine)
				_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
				if err == nil {
					fmt.Println("ASRI: " + agent.FarewellText)
				}
			}
			logger.Info("session ended")
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path file konfigurasi")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "direktori tabel CSV")
	cmd.Flags().BoolVar(&plain, "plain", false, "mode baris polos tanpa TUI")
	return cmd
}
