package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/blockfuselabs/CoinHawk/internal/adapters/openai"
	"github.com/blockfuselabs/CoinHawk/internal/adapters/zora"
	"github.com/blockfuselabs/CoinHawk/internal/core/service"
)

func main() {
	_ = godotenv.Load()

	address := flag.String("address", "0x2272ed9c92024da2589b3f21afd39aaf0690d88e", "coin address to inspect")
	summarize := flag.Bool("summarize", false, "also run the AI summary (needs OPENAI_API_KEY)")
	flag.Parse()

	// 1. Same wiring as main.go, minus the server.
	provider := zora.NewClient(os.Getenv("ZORA_API_KEY"))
	coins := service.NewCoinService(provider, os.Getenv("BASEAPP_REFERRER_ADDRESS"), nil)

	// 2. Fetch and render the prompt.
	log.Printf("Fetching coin %s...", *address)
	coin, err := coins.GetCoin(context.Background(), *address)
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	prompt := service.BuildCoinPrompt(coin)
	fmt.Println(prompt)

	// 3. Optionally run the summary end to end.
	if *summarize {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required with -summarize")
		}
		summary, err := openai.NewSummarizer(apiKey).Summarize(context.Background(), prompt)
		if err != nil {
			log.Fatalf("Summary failed: %v", err)
		}
		fmt.Println("\nSUMMARY:")
		fmt.Println(summary)
	}
}
