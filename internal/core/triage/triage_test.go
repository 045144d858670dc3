package triage

import (
	"strings"
	"testing"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/config"
)

func TestBuildRequest_RendersTemplate(t *testing.T) {
	req := BuildRequest(config.DefaultTriagePrompt, Input{
		Symptoms: "vomiting since yesterday",
		Species:  "perro",
		Age:      "3",
	})

	if !strings.Contains(req.Symptoms, "vomiting since yesterday") {
		t.Errorf("Symptoms missing from rendered text: %q", req.Symptoms)
	}
	if !strings.Contains(req.Symptoms, "Especie: perro") {
		t.Errorf("Species missing from rendered text: %q", req.Symptoms)
	}
	if !strings.Contains(req.Symptoms, "Edad: 3") {
		t.Errorf("Age missing from rendered text: %q", req.Symptoms)
	}
	if strings.Contains(req.Symptoms, "Contexto") {
		t.Errorf("Empty context section should not render: %q", req.Symptoms)
	}

	if req.Species != "perro" || req.Age != "3" {
		t.Errorf("Structured fields not carried through: %+v", req)
	}
}

func TestBuildRequest_BadTemplateFallsBack(t *testing.T) {
	req := BuildRequest("{{#unclosed", Input{Symptoms: "limping"})
	if req.Symptoms != "limping" {
		t.Errorf("Fallback symptoms = %q, want raw input", req.Symptoms)
	}
}

func TestFormat_ParsedAssessment(t *testing.T) {
	out := Format(&api.PrediagnosisResponse{
		OK: true,
		Parsed: &api.PrediagnosisParsed{
			Recommendations: "hydrate and rest",
			RedFlags:        "blood in vomit",
			Confidence:      "media",
			Sources:         []string{"vet-handbook"},
			Disclaimer:      "not a diagnosis",
		},
	})

	for _, want := range []string{"hydrate and rest", "blood in vomit", "media", "vet-handbook", "not a diagnosis"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestFormat_FallsBackToRaw(t *testing.T) {
	out := Format(&api.PrediagnosisResponse{Raw: "model said something unparseable"})
	if out != "model said something unparseable" {
		t.Errorf("Output = %q, want raw text", out)
	}
}

func TestRecommendation_PrefersParsed(t *testing.T) {
	resp := &api.PrediagnosisResponse{
		Raw:    "raw",
		Parsed: &api.PrediagnosisParsed{Recommendations: "see a vet today"},
	}
	if got := Recommendation(resp); got != "see a vet today" {
		t.Errorf("Recommendation() = %q", got)
	}

	if got := Recommendation(&api.PrediagnosisResponse{Raw: "raw"}); got != "raw" {
		t.Errorf("Recommendation() fallback = %q, want raw", got)
	}
}
