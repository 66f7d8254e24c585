package ticker

import "strings"

// Static lookup table. The analyzer only serves companies it knows a stock
// code for; anything else is rejected before a provider call is made.
var stockCodes = map[string]string{
	"Apple Inc":  "AAPL",
	"Microsoft":  "MSFT",
	"Google":     "GOOGL",
	"Alphabet":   "GOOGL",
	"Amazon":     "AMZN",
	"Meta":       "META",
	"Tesla":      "TSLA",
	"Nvidia":     "NVDA",
	"Netflix":    "NFLX",
	"Intel":      "INTC",
	"IBM":        "IBM",
	"Salesforce": "CRM",
}

// Lookup resolves a company name to its stock code. Matching is exact first,
// then case-insensitive.
func Lookup(company string) (string, bool) {
	company = strings.TrimSpace(company)

	if code, ok := stockCodes[company]; ok {
		return code, true
	}

	for name, code := range stockCodes {
		if strings.EqualFold(name, company) {
			return code, true
		}
	}

	return "", false
}
