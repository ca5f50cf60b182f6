package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath      string
	progressBackend string
	reportMalformed bool
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:   "radio-quiz <question_file_path> <mode>",
		Short: "Multiple-choice quiz over a tagged question bank",
		Long: "Presents the questions of a [I]/[Q]/[A]-[D] question file one at a time.\n" +
			"mode is 0 to show options in file order or 1 to shuffle them.\n" +
			"Progress is saved after every answer and restored on the next run.",
		Args:              quizArgs,
		PersistentPreRunE: loadEnv,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			randomize, _ := parseMode(args[1])
			return runQuiz(cmd, configPath, args[0], randomize)
		},
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stdout)

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&progressBackend, "progress-backend", "", "override progress backend (file, memory, redis, postgres, sqlite)")
	cmd.PersistentFlags().BoolVar(&reportMalformed, "report-malformed", false, "log question blocks that could not be parsed")
	cmd.AddCommand(NewServeCmd(&configPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewProgressCmd(&configPath))
	return cmd
}

// loadEnv reads .env from the working directory, if present, before config
// and the serve port are resolved. Explicit flags win over the environment.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if flag := cmd.Flag("config"); flag != nil && !flag.Changed {
		if env := os.Getenv("CONFIG_PATH"); env != "" {
			configPath = env
		}
	}
	if flag := cmd.Flag("port"); flag != nil && !flag.Changed {
		if env := os.Getenv("PORT"); env != "" {
			if err := flag.Value.Set(env); err != nil {
				return err
			}
		}
	}
	return nil
}
