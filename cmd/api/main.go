package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/9910597111/BlindSketch/internal/database"
	"github.com/9910597111/BlindSketch/internal/game"
	"github.com/9910597111/BlindSketch/internal/server"
	"github.com/9910597111/BlindSketch/internal/websockets"
	"github.com/9910597111/BlindSketch/internal/words"
)

func main() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	pool := words.NewPool(loadWordList())

	hub := websockets.NewHub()
	registry := game.NewRegistry(hub, pool)
	hub.Bind(registry)

	srv := server.NewServer(registry, hub)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[main] listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] forced shutdown: %v", err)
	}
}

// loadWordList picks the word source: a CSV file when WORDS_CSV is set, the
// database when configured, the builtin list otherwise.
func loadWordList() []words.Word {
	if path := os.Getenv("WORDS_CSV"); path != "" {
		list, err := words.FromCSV(path)
		if err != nil {
			log.Printf("[main] word list %s unusable (%v), using builtin", path, err)
			return words.Builtin()
		}
		log.Printf("[main] loaded %d words from %s", len(list), path)
		return list
	}

	if database.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := database.New(ctx)
		if err != nil {
			log.Printf("[main] database unavailable (%v), using builtin words", err)
			return words.Builtin()
		}
		defer db.Close()

		list, err := db.Words(ctx)
		if err != nil || len(list) == 0 {
			log.Printf("[main] no words from database (%v), using builtin", err)
			return words.Builtin()
		}
		log.Printf("[main] loaded %d words from database", len(list))
		return list
	}

	return words.Builtin()
}
