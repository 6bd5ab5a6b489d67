package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"academy-ai/internal/config"
	"academy-ai/internal/diagram"
	"academy-ai/internal/handle"
	"academy-ai/internal/ocr"
	"academy-ai/internal/ocr/anthropic"
	"academy-ai/internal/ocr/gemini"
	"academy-ai/internal/ocr/openai"
	"academy-ai/internal/ocr/vision"
	"academy-ai/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
)

func main() {
	cfg := config.Load()

	catalog, err := diagram.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal(err)
	}

	engines := ocr.NewEngines(
		openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel),
		gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		vision.New(cfg.VisionAPIKey),
	)
	client := ocr.New(engines)
	if avail := client.AvailableProviders(); len(avail) == 0 {
		log.Printf("no provider credentials configured; running in mock mode")
	} else {
		log.Printf("providers available: %v", avail)
	}

	var db *sql.DB
	var repo *store.OcrRepo
	if cfg.DatabaseURL != "" {
		db, err = sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		repo = store.NewOcrRepo(db)
		log.Printf("result cache enabled")
	}

	h := handle.New(client, catalog, repo)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("db: not ok\n" + err.Error()))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/v1/ocr/extract", h.Extract)
	mux.HandleFunc("/v1/ocr/extract-url", h.ExtractURL)
	mux.HandleFunc("/v1/ocr/analyze", h.Analyze)
	mux.HandleFunc("/v1/template/match", h.Match)
	mux.HandleFunc("/v1/template/match-batch", h.MatchBatch)
	mux.HandleFunc("/v1/providers", h.Providers)

	addr := ":" + cfg.Port
	log.Printf("academy-ai listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
