package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"radio-quiz/internal/app"
	"radio-quiz/internal/config"
	"radio-quiz/internal/domain"
	"radio-quiz/internal/infra/textfile"
	"radio-quiz/internal/transport/terminal"
)

// quizArgs accepts exactly a question file and a mode of 0 or 1.
func quizArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	_, err := parseMode(args[1])
	return err
}

func parseMode(raw string) (bool, error) {
	switch raw {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("%w, got %q", domain.ErrInvalidMode, raw)
}

func runQuiz(cmd *cobra.Command, configPath, questionFile string, randomize bool) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	questions, err := loadQuestions(ctx, cfg, questionFile)
	if err != nil {
		return err
	}

	store, closeStore, err := openProgressStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	service := app.NewQuizService(app.NewQuiz(questions, randomize, nil), store)
	return terminal.NewPresenter(service, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if progressBackend != "" {
		cfg.Progress.Backend = progressBackend
	}
	return cfg, nil
}

func loadQuestions(ctx context.Context, cfg config.Config, path string) ([]domain.QuestionRecord, error) {
	loader := textfile.NewLoader(textfile.Options{
		AnswerIndex: cfg.Quiz.AnswerIndex,
		Diagnostics: reportMalformed,
	})
	questions, diags, err := loader.LoadQuestions(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		log.Printf("%s: skipped %s", path, d)
	}
	if reportMalformed {
		log.Printf("%s: loaded %d questions, skipped %d blocks", path, len(questions), len(diags))
	}
	return questions, nil
}
