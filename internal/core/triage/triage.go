package triage

import (
	"fmt"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/proyectmyvet/myvet/internal/core/api"
)

// Input is what the user told us about the animal.
type Input struct {
	Symptoms string
	Species  string
	Age      string
	Context  string
}

// BuildRequest renders the symptom template into the request the AI agent
// receives. The template is user-overridable via config; a broken template
// falls back to the raw symptoms rather than blocking the triage.
func BuildRequest(template string, in Input) api.PrediagnosisRequest {
	templateData := map[string]interface{}{
		"symptoms": in.Symptoms,
		"species":  in.Species,
		"age":      in.Age,
		"context":  in.Context,
	}

	symptoms, err := mustache.Render(template, templateData)
	if err != nil {
		symptoms = in.Symptoms
	}

	return api.PrediagnosisRequest{
		Symptoms: strings.TrimSpace(symptoms),
		Species:  in.Species,
		Age:      in.Age,
		Context:  in.Context,
	}
}

// Format renders the agent's assessment for terminal display. When the
// backend could not parse its own model output, the raw text is shown.
func Format(resp *api.PrediagnosisResponse) string {
	var b strings.Builder

	if resp.Parsed == nil {
		if resp.Raw != "" {
			return resp.Raw
		}
		return "No assessment returned."
	}

	p := resp.Parsed
	if p.Recommendations != "" {
		b.WriteString("Recommendations:\n")
		b.WriteString(indent(p.Recommendations))
	}
	if p.RedFlags != "" {
		b.WriteString("\nRed flags:\n")
		b.WriteString(indent(p.RedFlags))
	}
	if p.Confidence != "" {
		fmt.Fprintf(&b, "\nConfidence: %s\n", p.Confidence)
	}
	if len(p.Sources) > 0 {
		b.WriteString("\nSources:\n")
		for _, source := range p.Sources {
			fmt.Fprintf(&b, "  - %s\n", source)
		}
	}
	if p.Disclaimer != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Disclaimer)
	}
	return b.String()
}

// Recommendation returns just the recommendation text, for --copy.
func Recommendation(resp *api.PrediagnosisResponse) string {
	if resp.Parsed != nil && resp.Parsed.Recommendations != "" {
		return resp.Parsed.Recommendations
	}
	return resp.Raw
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
