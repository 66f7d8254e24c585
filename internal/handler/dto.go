package handler

type SentimentResponse struct {
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
	AnalyzedAt         string   `json:"analyzed_at"`
}
