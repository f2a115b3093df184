package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/eventmatch-ai/event-advisor/internal/llm"
)

// SearchToolName is the tool name declared to the model.
const SearchToolName = "search_internet"

// SearchToolSpec declares the simulated internet search tool.
func SearchToolSpec() llm.ToolSpec {
	return llm.ToolSpec{
		Name:        SearchToolName,
		Description: "Performs a simulated internet search for the given query related to tech, startups, or specific technologies.",
		Parameters: llm.Schema{
			Type: "object",
			Properties: map[string]llm.Property{
				"query": {Type: "string"},
			},
			Required: []string{"query"},
		},
	}
}

// SearchHandler returns the handler backing the search tool. The search is
// simulated: results are canned snippets routed by keywords in the query.
// A real deployment would swap in a search API behind the same Handler shape.
func SearchHandler() Handler {
	return func(ctx context.Context, args map[string]any) (map[string]any, error) {
		query, _ := args["query"].(string)
		if query == "" {
			return nil, fmt.Errorf("search_internet: missing 'query' argument")
		}
		return map[string]any{"result": simulatedSearch(query)}, nil
	}
}

func simulatedSearch(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "tech event") || strings.Contains(q, "startup event"):
		return fmt.Sprintf("Search results for %q: Tech and startup events typically cover topics like AI, blockchain, SaaS, startup funding and networking. Many events feature startup pitches, mentoring sessions and investment opportunities. Innovation is key.", query)
	case strings.Contains(q, "blockchain"):
		return fmt.Sprintf("Search results for %q: Blockchain is a distributed ledger technology underpinning cryptocurrencies like Bitcoin and Ethereum. It is used for smart contracts, NFTs, decentralized finance (DeFi) and supply chain traceability. It is a disruptive technology.", query)
	case strings.Contains(q, "artificial intelligence") || hasWord(q, "ai"):
		return fmt.Sprintf("Search results for %q: Artificial Intelligence (AI) is a field of computer science focused on building intelligent machines that work and react like humans. It includes machine learning, natural language processing, computer vision and robotics. AI is transforming industries.", query)
	case strings.Contains(q, "fintech") || strings.Contains(q, "finance"):
		return fmt.Sprintf("Search results for %q: Fintech refers to financial technology that aims to improve and automate the delivery and use of financial services. It includes mobile payments, online lending, automated investment management and cryptocurrencies. It is a fast-growing sector.", query)
	case strings.Contains(q, "saas") || strings.Contains(q, "software as a service"):
		return fmt.Sprintf("Search results for %q: Software as a Service (SaaS) is a software delivery model where software is licensed by subscription and centrally hosted. It is a common way to deliver business and consumer applications, offering scalability and accessibility.", query)
	default:
		return fmt.Sprintf("Search results for %q: General information about %s. This could include news, definitions, recent trends or applications.", query, query)
	}
}

// hasWord reports whether q contains w as a whole word, so that "ai" does
// not match inside words like "maintain".
func hasWord(q, w string) bool {
	for _, f := range strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if f == w {
			return true
		}
	}
	return false
}
