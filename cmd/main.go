package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamforge/api"
	"teamforge/auth"
	"teamforge/internal"
	"teamforge/moderation"
	"teamforge/repositories"
	"teamforge/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for HTTP and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	auth.SetSigningKey(config.JWTSecret)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation
	mask, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	words, err := moderation.LoadWords(os.DirFS(config.BannedWordsDir), ".")
	if err != nil {
		return fmt.Errorf("banned words loading failed: %w", err)
	}
	censor, err := moderation.NewCensor(words, mask, log)
	if err != nil {
		return fmt.Errorf("censor build failed: %w", err)
	}

	// 4. Repositories & Services
	users := repositories.NewUserRepository(db)
	groups := repositories.NewGroupRepository(db)
	teams := repositories.NewTeamRepository(db)
	rankings := repositories.NewRankingRepository(db)
	assignments := repositories.NewAssignmentRepository(db)
	announcements := repositories.NewAnnouncementRepository(db)

	router := api.NewRouter(
		services.NewAuthService(users, groups, rankings, config.AuthTokenDuration),
		services.NewGroupService(groups, users, rankings, announcements, censor, log),
		services.NewTeamService(teams, groups, users, rankings, announcements, censor, log),
		services.NewMatchingService(groups, teams, users, rankings, assignments, log),
		log,
	)

	if config.DebugPort > 0 {
		internal.StartDebugServer(db, config.DebugPort, nil, nil)
		log.Info("Store inspector enabled", "port", config.DebugPort)
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. HTTP Server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: router}

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
