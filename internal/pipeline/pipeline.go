package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sudipta334/market-sentiment-analyzer/internal/model"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/llm"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/news"
	"github.com/sudipta334/market-sentiment-analyzer/pkg/trace"
)

// newsLimit caps how many headlines feed one classification.
const newsLimit = 5

var ErrUnknownCompany = errors.New("unknown company")

type TickerLookup interface {
	Lookup(company string) (string, bool)
}

// TickerFunc adapts a plain lookup function to TickerLookup.
type TickerFunc func(company string) (string, bool)

func (f TickerFunc) Lookup(company string) (string, bool) { return f(company) }

type NewsFetcher interface {
	FetchCompanyNews(symbol string, limit int) ([]news.Article, error)
}

type SentimentClassifier interface {
	Analyze(input llm.AnalysisInput) (*llm.AnalysisResult, error)
}

// Runner wires the three pipeline stages together. One Run is one complete
// pass: ticker lookup, news fetch, classification, formatting. The tracer is
// optional; a nil client disables tracing without changing results.
type Runner struct {
	tickers    TickerLookup
	fetcher    NewsFetcher
	classifier SentimentClassifier
	tracer     *trace.Client
}

func NewRunner(tickers TickerLookup, fetcher NewsFetcher, classifier SentimentClassifier, tracer *trace.Client) *Runner {
	return &Runner{
		tickers:    tickers,
		fetcher:    fetcher,
		classifier: classifier,
		tracer:     tracer,
	}
}

func (r *Runner) Run(company string) (*model.SentimentProfile, error) {
	if strings.TrimSpace(company) == "" {
		return nil, errors.New("company name is empty")
	}

	defer r.flush()

	tr := r.tracer.StartTrace("market-sentiment", company)

	stockCode, ok := r.tickers.Lookup(company)
	if !ok {
		return nil, fmt.Errorf("%w: no stock code for %q", ErrUnknownCompany, company)
	}

	start := time.Now()
	articles, err := r.fetcher.FetchCompanyNews(stockCode, newsLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	tr.Span("fetch-news", stockCode, len(articles), start, time.Now())

	headlines := make([]string, 0, len(articles))
	for _, a := range articles {
		headlines = append(headlines, a.Headline)
	}

	input := llm.AnalysisInput{
		Company:   company,
		StockCode: stockCode,
		Headlines: headlines,
	}

	start = time.Now()
	result, err := r.classifier.Analyze(input)
	if err != nil {
		return nil, fmt.Errorf("analyze sentiment: %w", err)
	}
	tr.Generation("analyze-sentiment", result.ModelUsed, result.Prompt, result.RawCompletion,
		map[string]any{"prompt_version": result.PromptVersion}, start, time.Now())

	label, known := model.NormalizeLabel(result.Sentiment)
	if !known {
		slog.Warn("classifier returned unrecognized sentiment, falling back to neutral", "sentiment", result.Sentiment, "company", company)
	}

	profile := &model.SentimentProfile{
		Company:            company,
		StockCode:          stockCode,
		Label:              label,
		Rationale:          result.Rationale,
		NewsDesc:           result.NewsDesc,
		PeopleNames:        result.PeopleNames,
		PlacesNames:        result.PlacesNames,
		OtherCompanies:     result.OtherCompanies,
		RelatedIndustries:  result.RelatedIndustries,
		MarketImplications: result.MarketImplications,
		ConfidenceScore:    result.ConfidenceScore,
		ModelUsed:          result.ModelUsed,
	}

	tr.End(profile)

	return profile, nil
}

func (r *Runner) flush() {
	if err := r.tracer.Flush(); err != nil {
		slog.Error("error flushing trace events", "error", err)
	}
}
