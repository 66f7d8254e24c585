package model

import "strings"

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// SentimentProfile is the single artifact a pipeline run produces. It is
// printed as JSON by the CLI and returned as-is by the API.
type SentimentProfile struct {
	Company            string   `json:"company"`
	StockCode          string   `json:"stock_code"`
	Label              string   `json:"label"`
	Rationale          string   `json:"rationale"`
	NewsDesc           string   `json:"newsdesc"`
	PeopleNames        []string `json:"people_names"`
	PlacesNames        []string `json:"places_names"`
	OtherCompanies     []string `json:"other_companies_referred"`
	RelatedIndustries  []string `json:"related_industries"`
	MarketImplications string   `json:"market_implications"`
	ConfidenceScore    float64  `json:"confidence_score"`
	ModelUsed          string   `json:"model_used"`
}

// NormalizeLabel maps whatever casing or phrasing the model used onto the
// canonical label set. The second return reports whether the input was
// recognized at all.
func NormalizeLabel(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive", "bullish":
		return LabelPositive, true
	case "negative", "bearish":
		return LabelNegative, true
	case "neutral", "mixed":
		return LabelNeutral, true
	}
	return LabelNeutral, false
}
