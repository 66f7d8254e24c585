package llm

type AnalysisInput struct {
	Company   string
	StockCode string
	Headlines []string
}

type AnalysisResult struct {
	Sentiment          string
	Rationale          string
	NewsDesc           string
	PeopleNames        []string
	PlacesNames        []string
	OtherCompanies     []string
	RelatedIndustries  []string
	MarketImplications string
	ConfidenceScore    float64
	ModelUsed          string
	PromptVersion      string
	Prompt             string
	RawCompletion      string
}
