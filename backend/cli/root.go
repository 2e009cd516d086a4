// Package cli holds the courtside command line: the HTTP server plus the
// admin commands that share its configuration.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"courtside/backend/config"
	"courtside/backend/repository"
	"courtside/backend/routes"
	"courtside/backend/services"
	"courtside/backend/utils"
)

const shutdownTimeout = 10 * time.Second

var analyticsTeacher string

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "courtside",
		Short:        "Basketball learning platform backend",
		SilenceUsage: true,
		RunE:         runServeCmd,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newAnalyticsCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  runServeCmd,
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			if err := utils.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default course categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			courses := services.NewCourseService(repository.NewCourseRepository(db), log.New(io.Discard, "", 0))
			n, err := courses.SeedCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories\n", n)
			return nil
		},
	}
}

func newAnalyticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Print course completion analytics of a teacher as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			logger := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat, Output: cmd.ErrOrStderr()})
			svc := routes.NewServices(routes.NewRepositories(db), nil, cfg, logger)
			return printAnalytics(cmd.Context(), cmd.OutOrStdout(), svc.Analytics, analyticsTeacher)
		},
	}
	cmd.Flags().StringVar(&analyticsTeacher, "teacher", "", "teacher user id")
	_ = cmd.MarkFlagRequired("teacher")
	return cmd
}

func printAnalytics(ctx context.Context, w io.Writer, svc services.AnalyticsService, teacherID string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(svc.GetAnalytics(ctx, teacherID))
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}

	logger := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat, EnableColors: cfg.LogFormat != "json"})

	app := routes.NewApp(cfg, logger)
	svc := routes.NewServices(routes.NewRepositories(db), routes.NewGenerator(cfg), cfg, logger)
	routes.SetupRoutes(app, svc, cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on :%s", cfg.ServerPort)
		errCh <- app.Listen(":" + cfg.ServerPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Println("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}

func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := utils.InitDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init database: %w", err)
	}
	return cfg, db, nil
}
