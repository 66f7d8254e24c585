package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const promptVersion = "v1"

const systemPrompt = `You are a financial analyst. You will be given recent news about a company and its stock code. Analyze the news and provide a structured sentiment profile.

Rules:
1. Classify the overall sentiment toward the company's market outlook as Positive, Negative, or Neutral.
2. Explain your reasoning in one or two sentences.
3. Summarize the news you were given.
4. Extract named entities: people, places, and other companies mentioned.
5. Identify related industries and the market implications.
6. Provide a confidence score for your sentiment classification between 0 and 1.

Output as JSON only, no other text:
{
  "sentiment": "Positive, Negative, or Neutral",
  "rationale": "why you chose this sentiment",
  "newsdesc": "summary of the news",
  "people_names": ["people mentioned"],
  "places_names": ["places mentioned"],
  "other_companies_referred": ["other companies mentioned"],
  "related_industries": ["related industries"],
  "market_implications": "likely market impact",
  "confidence_score": 0.0
}`

// noNewsText stands in for the headline block when the provider returned
// nothing, so the model still produces a profile instead of the run failing.
const noNewsText = "No news found."

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) Analyze(input AnalysisInput) (*AnalysisResult, error) {
	userPrompt := buildUserPrompt(input)

	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(0),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	raw := resp.Choices[0].Message.Content

	result, err := parseAnalysis(raw)
	if err != nil {
		return nil, err
	}

	result.ModelUsed = c.modelName
	result.PromptVersion = promptVersion
	result.Prompt = userPrompt
	result.RawCompletion = raw

	return result, nil
}

func buildUserPrompt(input AnalysisInput) string {
	news := noNewsText
	if len(input.Headlines) > 0 {
		news = strings.Join(input.Headlines, "\n")
	}

	return fmt.Sprintf("Company: %s (stock code: %s)\n\nNews:\n%s", input.Company, input.StockCode, news)
}

func parseAnalysis(content string) (*AnalysisResult, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Sentiment          string   `json:"sentiment"`
		Rationale          string   `json:"rationale"`
		NewsDesc           string   `json:"newsdesc"`
		PeopleNames        []string `json:"people_names"`
		PlacesNames        []string `json:"places_names"`
		OtherCompanies     []string `json:"other_companies_referred"`
		RelatedIndustries  []string `json:"related_industries"`
		MarketImplications string   `json:"market_implications"`
		ConfidenceScore    float64  `json:"confidence_score"`
	}

	err := json.Unmarshal([]byte(content), &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	return &AnalysisResult{
		Sentiment:          parsed.Sentiment,
		Rationale:          parsed.Rationale,
		NewsDesc:           parsed.NewsDesc,
		PeopleNames:        parsed.PeopleNames,
		PlacesNames:        parsed.PlacesNames,
		OtherCompanies:     parsed.OtherCompanies,
		RelatedIndustries:  parsed.RelatedIndustries,
		MarketImplications: parsed.MarketImplications,
		ConfidenceScore:    parsed.ConfidenceScore,
	}, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
