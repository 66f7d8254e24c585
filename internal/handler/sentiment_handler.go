package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sudipta334/market-sentiment-analyzer/internal/model"
	"github.com/sudipta334/market-sentiment-analyzer/internal/pipeline"
)

type Analyzer interface {
	Run(company string) (*model.SentimentProfile, error)
}

type SentimentHandler struct {
	analyzer       Analyzer
	tracingEnabled bool
}

func NewSentimentHandler(analyzer Analyzer, tracingEnabled bool) *SentimentHandler {
	return &SentimentHandler{analyzer: analyzer, tracingEnabled: tracingEnabled}
}

// GetSentiment runs one full pipeline pass for the company in the path.
// Each request is an independent, stateless invocation.
func (h *SentimentHandler) GetSentiment(c *gin.Context) {
	company := c.Param("company")

	profile, err := h.analyzer.Run(company)
	if err != nil {
		if errors.Is(err, pipeline.ErrUnknownCompany) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown company"})
			return
		}

		slog.Error("error analyzing sentiment", "error", err, "company", company)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Analysis failed"})
		return
	}

	res := SentimentResponse{
		Company:            profile.Company,
		StockCode:          profile.StockCode,
		Label:              profile.Label,
		Rationale:          profile.Rationale,
		NewsDesc:           profile.NewsDesc,
		PeopleNames:        profile.PeopleNames,
		PlacesNames:        profile.PlacesNames,
		OtherCompanies:     profile.OtherCompanies,
		RelatedIndustries:  profile.RelatedIndustries,
		MarketImplications: profile.MarketImplications,
		ConfidenceScore:    profile.ConfidenceScore,
		ModelUsed:          profile.ModelUsed,
		AnalyzedAt:         time.Now().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, res)
}

func (h *SentimentHandler) GetHealth(c *gin.Context) {
	tracing := "disabled"
	if h.tracingEnabled {
		tracing = "enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"news_provider": "finnhub",
		"llm_provider":  "openai",
		"tracing":       tracing,
	})
}
