package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tricreta/promptparse/internal/config"
	"github.com/tricreta/promptparse/internal/conversions"
	"github.com/tricreta/promptparse/internal/convert"
	"github.com/tricreta/promptparse/internal/db"
	"github.com/tricreta/promptparse/internal/llm"
	"github.com/tricreta/promptparse/internal/server"
	"github.com/tricreta/promptparse/internal/validation"
	"github.com/tricreta/promptparse/internal/waitlist"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the promptparse HTTP server",
	Long:  `Starts the HTTP server exposing the conversion, validation, schema, history and waitlist endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Local .env is a dev convenience; absence is not an error.
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort > 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Create the converter. A missing API key degrades conversion to
		// immediate failed results instead of refusing to start.
		converter := buildConverter(cfg)

		// Open the conversion history database.
		database, err := db.Open(filepath.Join(cfg.DataDir, "promptparse.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		history := conversions.NewStore(database)

		// The waitlist degrades independently of everything else.
		wlClient, err := waitlist.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			if !errors.Is(err, waitlist.ErrNotConfigured) {
				return fmt.Errorf("creating waitlist client: %w", err)
			}
			log.Printf("waitlist backend not configured; signups disabled")
			wlClient = nil
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: serveAllowAll,
		})

		r := srv.Router()
		convert.RegisterRoutes(r, converter, history)
		conversions.RegisterRoutes(r, history)
		validation.RegisterRoutes(r)
		waitlist.RegisterRoutes(r, wlClient)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// buildConverter resolves the provider credential and constructs the
// converter, degrading to an unavailable one when the key is missing.
func buildConverter(cfg *config.Config) *convert.Converter {
	envVar := config.APIKeyEnvVar(cfg.Provider)
	apiKey := os.Getenv(envVar)

	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model, apiKey)
	if err != nil {
		log.Printf("LLM provider unavailable: %v", err)
		return convert.NewUnavailable(fmt.Sprintf(
			"%s API key is missing. Please configure the %s environment variable.",
			cfg.Provider, envVar))
	}
	return convert.New(provider, cfg.Model)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured HTTP port")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
