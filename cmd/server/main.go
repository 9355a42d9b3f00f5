package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/ced-it/promptforge/internal/config"
	"github.com/ced-it/promptforge/internal/llm"
	"github.com/ced-it/promptforge/internal/prompt"
	"github.com/ced-it/promptforge/internal/server"
)

func main() {
	configFile := flag.String("config", "", "path to an optional yaml config file")
	flag.Parse()

	// Missing .env is fine; the environment itself is authoritative.
	_ = godotenv.Load()

	cfg, err := config.LoadServer(*configFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	provider := llm.NewProvider(cfg.AnthropicAPIKey, cfg.Model)
	generator := prompt.NewGenerator(provider, cfg.Model, cfg.MaxTokens)

	if provider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := provider.Ping(ctx); err != nil {
			log.Printf("warning: %s unreachable: %v", provider.Name(), err)
		}
		cancel()
	} else {
		log.Println("no ANTHROPIC_API_KEY set, serving template-mode prompts")
	}

	svc := server.New(cfg, generator)
	log.Printf("listening on :%s (mode %s)", cfg.Port, generator.Mode())
	if err := svc.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
