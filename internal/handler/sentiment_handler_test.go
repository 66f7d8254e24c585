package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/sudipta334/market-sentiment-analyzer/internal/model"
	"github.com/sudipta334/market-sentiment-analyzer/internal/pipeline"
)

type fakeAnalyzer struct {
	profile *model.SentimentProfile
	err     error

	gotCompany string
}

func (f *fakeAnalyzer) Run(company string) (*model.SentimentProfile, error) {
	f.gotCompany = company
	return f.profile, f.err
}

func newTestRouter(analyzer Analyzer, tracingEnabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSentimentHandler(analyzer, tracingEnabled)
	r.GET("/sentiment/:company", h.GetSentiment)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetSentiment(t *testing.T) {
	analyzer := &fakeAnalyzer{
		profile: &model.SentimentProfile{
			Company:         "Microsoft",
			StockCode:       "MSFT",
			Label:           model.LabelPositive,
			Rationale:       "Strong cloud growth.",
			ConfidenceScore: 0.85,
			ModelUsed:       "gpt-4o-mini",
		},
	}

	r := newTestRouter(analyzer, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sentiment/Microsoft", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Microsoft", analyzer.gotCompany)

	var res SentimentResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "Microsoft", res.Company)
	assert.Equal(t, "MSFT", res.StockCode)
	assert.Equal(t, "positive", res.Label)
	assert.Equal(t, "Strong cloud growth.", res.Rationale)
	assert.Equal(t, 0.85, res.ConfidenceScore)
	assert.Equal(t, "gpt-4o-mini", res.ModelUsed)
	assert.NotEqual(t, "", res.AnalyzedAt)
}

func TestGetSentimentUnknownCompany(t *testing.T) {
	analyzer := &fakeAnalyzer{
		err: fmt.Errorf("%w: no stock code for %q", pipeline.ErrUnknownCompany, "Globex"),
	}

	r := newTestRouter(analyzer, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sentiment/Globex", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSentimentProviderError(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("openai API error: rate limited")}

	r := newTestRouter(analyzer, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sentiment/Microsoft", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "finnhub", res["news_provider"])
	assert.Equal(t, "openai", res["llm_provider"])
	assert.Equal(t, "enabled", res["tracing"])
}

func TestGetHealthTracingDisabled(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "disabled", res["tracing"])
}
