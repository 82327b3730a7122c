package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/murahdahla/internal/config"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "murahdahla",
	Short: "Discord bot for asynchronous randomizer races",
	Long: `Runs async races in Discord channel groups: runners post their times in a
submission channel and the bot keeps a paginated leaderboard up to date.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file")

	rootCmd.AddCommand(runCmd, migrateCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(&config.LoadInput{
		ConfigPath: configPath,
		EnvFile:    envFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
