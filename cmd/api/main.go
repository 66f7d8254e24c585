package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sudipta334/market-sentiment-analyzer/internal/handler"
	"github.com/sudipta334/market-sentiment-analyzer/internal/pipeline"
	"github.com/sudipta334/market-sentiment-analyzer/internal/ticker"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/llm"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/news"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/trace"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	finnhubKey := os.Getenv("FINNHUB_API_KEY")
	if finnhubKey == "" {
		log.Fatal("FINNHUB_API_KEY environment variable is not set")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is not set")
	}

	tracer := traceClientFromEnv()

	runner := pipeline.NewRunner(
		pipeline.TickerFunc(ticker.Lookup),
		news.NewFinnhubClient(finnhubKey),
		llm.NewOpenAIClient(openaiKey),
		tracer,
	)

	sentimentHandler := handler.NewSentimentHandler(runner, tracer != nil)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/sentiment/:company", sentimentHandler.GetSentiment)
	r.GET("/health", sentimentHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
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
