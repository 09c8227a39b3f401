package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz-player/internal/app"
	"quiz-player/internal/config"
	"quiz-player/internal/infra/memory"
	redisstore "quiz-player/internal/infra/redis"
	"quiz-player/internal/quizfile"
	transport "quiz-player/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewServeCmd builds the CLI subcommand to start the websocket player.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve quiz banks to websocket players",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
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

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	loader := quizfile.NewDirLoader(cfg.Quiz.Dir)
	bankTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var banks app.BankRepository
	if redisClient != nil {
		banks = redisstore.NewBankRepository(redisClient, loader, bankTTL)
	} else {
		banks = memory.NewBankRepository(loader, bankTTL)
	}

	var store app.SessionRepository
	if redisClient != nil {
		store = redisstore.NewSessionStore(redisClient, redisTTL)
	} else {
		store = memory.NewSessionStore()
	}
	service := app.NewPlayerService(store, banks, app.PlayerOptions{
		Shuffle: cfg.Player.Shuffle,
		Limit:   cfg.Player.Limit,
	})
	wsHandler := transport.NewWSHandler(service, cfg.Player.PassPercent)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:              ":" + finalPort,
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("serving quiz banks from %s on :%s", cfg.Quiz.Dir, finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
