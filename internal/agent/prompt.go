package agent

import (
	"fmt"
	"strings"

	"github.com/eventmatch-ai/event-advisor/internal/model"
)

// Response lead-ins the model is instructed to use. The finalizer treats the
// returned text as opaque prose; these are a prompt contract, not a schema.
const (
	PositiveLeadIn = "This event is very promising for your interests!"
	NegativeLeadIn = "This event seems less aligned with your startup goals."
)

// BuildPrompt composes the instruction prompt from the validated request and
// the rendered candidate list. It is a pure function of its inputs.
func BuildPrompt(req *model.AnalysisRequest, candidateList string) string {
	var b strings.Builder

	b.WriteString("You are an expert assistant in the tech, startup and innovation event ecosystem. ")
	b.WriteString("Your goal is to provide a concise assessment of whether a specific event would be worth attending ")
	b.WriteString("for the startup described below, considering opportunities in technology, investment and new-venture development.\n\n")

	b.WriteString("Key information:\n")
	fmt.Fprintf(&b, "- Event name: %q\n", req.EventName)
	if req.EventWebsite != "" {
		fmt.Fprintf(&b, "- Event website: %q\n", req.EventWebsite)
	}
	fmt.Fprintf(&b, "- Overall event theme: %q\n", req.Theme())
	if req.StartupName != "" {
		fmt.Fprintf(&b, "- Startup name: %q\n", req.StartupName)
	}
	fmt.Fprintf(&b, "- Startup description: %q\n", req.StartupDescription)
	if req.StartupSector != "" {
		fmt.Fprintf(&b, "- Startup sector: %q\n", req.StartupSector)
	}
	if req.StartupWebsite != "" {
		fmt.Fprintf(&b, "- Startup website: %q\n", req.StartupWebsite)
	}

	b.WriteString("\nOther known events that could be recommended as alternatives:\n")
	b.WriteString(candidateList)
	b.WriteString("\n\n")

	b.WriteString("Your analysis process must be the following:\n")
	b.WriteString("1. Contextual research: use the `search_internet` tool to look up the event's reference URL(s) ")
	if req.EventWebsite != "" {
		fmt.Fprintf(&b, "(start with %q) ", req.EventWebsite)
	}
	b.WriteString("and the key concepts in the startup description before judging. This helps you understand the domain and relevance.\n")
	b.WriteString("2. Interest evaluation: based on the retrieved context and the startup description, decide whether attending aligns with the interests of a startup enthusiast, a potential investor, or someone seeking tech innovation. Consider networking, trend insight, funding opportunities and visibility.\n")
	b.WriteString("3. Response generation: produce a clear, concise answer of roughly 500 characters.\n\n")

	b.WriteString("Response format: use exactly one of these two shapes:\n")
	fmt.Fprintf(&b, "- If the event IS of interest: %q followed by a concise justification mentioning the startup and the event theme.\n", PositiveLeadIn)
	fmt.Fprintf(&b, "- If the event is NOT of interest: %q followed by a concise justification and exactly one alternative recommendation drawn only from the list of other known events above. If that list says %q, do not recommend an alternative.\n", NegativeLeadIn, NoAlternativesSentinel)

	return b.String()
}
