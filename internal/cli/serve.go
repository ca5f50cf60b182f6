package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"radio-quiz/internal/app"
	transport "radio-quiz/internal/transport/http"
)

// NewServeCmd builds the subcommand that presents the quiz in a browser.
func NewServeCmd(configPath *string) *cobra.Command {
	envPort := os.Getenv("PORT")
	var port string

	cmd := &cobra.Command{
		Use:   "serve <question_file_path> <mode>",
		Short: "Serve the quiz over HTTP and websocket",
		Args:  quizArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			randomize, _ := parseMode(args[1])
			return runServer(cmd.Context(), *configPath, port, args[0], randomize)
		},
	}
	cmd.Flags().StringVar(&port, "port", envPort, "port to listen on")
	return cmd
}

func runServer(ctx context.Context, configPath, portFlag, questionFile string, randomize bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
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
	service.Start(ctx)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(service),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("serving %d questions on :%s", len(questions), finalPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
