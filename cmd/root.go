package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
)

var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Task tracking service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", ".env", "dotenv file to load before reading the environment")
	flags.String("database-driver", "", "database driver: sqlite or postgres (DATABASE_DRIVER)")
	flags.String("database-dsn", "", "database connection string (DATABASE_DSN)")
	flags.String("log-level", "", "log level: debug, info, warn, error (LOG_LEVEL)")
	flags.String("log-format", "", "log format: json or text (LOG_FORMAT)")

	bindFlag(rootCmd, "database_driver", "database-driver")
	bindFlag(rootCmd, "database_dsn", "database-dsn")
	bindFlag(rootCmd, "log_level", "log-level")
	bindFlag(rootCmd, "log_format", "log-format")
}

// bindFlag lets an explicitly set flag override the environment for key.
func bindFlag(cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func loadConfig() (config.Config, error) {
	return config.Load(v)
}
