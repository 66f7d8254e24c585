package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sudipta334/market-sentiment-analyzer/internal/pipeline"
	"github.com/sudipta334/market-sentiment-analyzer/internal/ticker"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/llm"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/news"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/trace"
)

func main() {

	godotenv.Load()

	// logs go to stderr so stdout carries only the result JSON
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	company := "Microsoft"
	if len(os.Args) > 1 {
		company = strings.Join(os.Args[1:], " ")
	}

	finnhubKey := os.Getenv("FINNHUB_API_KEY")
	if finnhubKey == "" {
		log.Fatal("FINNHUB_API_KEY environment variable is not set")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is not set")
	}

	runner := pipeline.NewRunner(
		pipeline.TickerFunc(ticker.Lookup),
		news.NewFinnhubClient(finnhubKey),
		llm.NewOpenAIClient(openaiKey),
		traceClientFromEnv(),
	)

	profile, err := runner.Run(company)
	if err != nil {
		log.Fatalf("error analyzing %s: %v", company, err)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		log.Fatalf("error encoding result: %v", err)
	}

	fmt.Println(string(out))
}

func traceClientFromEnv() *trace.Client {
	publicKey := os.Getenv("LANGFUSE_PUBLIC_KEY")
	secretKey := os.Getenv("LANGFUSE_SECRET_KEY")

	if publicKey == "" || secretKey == "" {
		slog.Warn("langfuse keys not configured, tracing disabled")
		return nil
	}

	return trace.NewClient(publicKey, secretKey, os.Getenv("LANGFUSE_HOST"))
}
