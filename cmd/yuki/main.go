package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"yuki/internal/di"
	"yuki/internal/infrastructure/config"
	"yuki/internal/infrastructure/env"
	"yuki/internal/server"

	"github.com/spf13/cobra"
)

var (
	flagSettings string
	flagVision   bool
	flagAddr     string
)

var rootCmd = &cobra.Command{
	Use:   "yuki",
	Short: "Desktop automation agent",
	Long:  "An LLM-driven agent that observes the Windows desktop through accessibility APIs and operates it with mouse and keyboard.",
}

var runCmd = &cobra.Command{
	Use:   "run [query]",
	Short: "Run a single query, or start an interactive prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if len(args) > 0 {
			return runQuery(ctx, container, strings.Join(args, " "))
		}

		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("\nquery> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil
			}
			query := strings.TrimSpace(line)
			if query == "" || query == "exit" || query == "quit" {
				return nil
			}
			if err := runQuery(ctx, container, query); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			if ctx.Err() != nil {
				return nil
			}
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the agent over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		srv := server.New(server.Config{Addr: flagAddr}, container.Agent, container.Desktop, container.Logger)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func newContainer() (*di.Container, error) {
	envService := env.NewEnvService()

	settings, err := config.Load(flagSettings)
	if err != nil {
		return nil, err
	}

	return di.NewContainer(di.Config{
		OpenRouterAPIKey: envService.MustGet("OPENROUTER_API_KEY"),
		OpenRouterModel:  envService.GetDefault("OPENROUTER_MODEL_NAME", "anthropic/claude-sonnet-4"),
		UseVision:        flagVision,
		LogLevel:         envService.GetDefault("LOG_LEVEL", "info"),
		LogJSON:          envService.GetBool("LOG_JSON", false),
		Settings:         settings,
	})
}

func runQuery(ctx context.Context, container *di.Container, query string) error {
	container.Logger.Info("query started", "query", query)
	result := container.Agent.Invoke(ctx, query)
	if result.Error != "" {
		return errors.New(result.Error)
	}
	fmt.Println(result.Content)
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings YAML (optional)")
	rootCmd.PersistentFlags().BoolVar(&flagVision, "vision", false, "Attach screenshots to oracle prompts")
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8732", "HTTP listen address")
	rootCmd.AddCommand(runCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
