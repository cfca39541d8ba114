package debrief

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	core "github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/renderers/vanilla"
)

func TestStaticAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(StaticAssetsFS(), vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".debrief-error") {
		t.Fatalf("expected stylesheet to style error slots")
	}
}

func TestEmbeddedTemplatesIncludesForm(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/form.tmpl"); err != nil {
		t.Fatalf("expected form template: %v", err)
	}
}

func TestGenerateHTML(t *testing.T) {
	out, err := GenerateHTML(context.Background(), Context{CandidateName: "Ada Lovelace"}, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `data-field="feedback"`) {
		t.Fatalf("expected feedback field in output:\n%s", out)
	}
}

func TestValidate(t *testing.T) {
	feedback, err := Validate(map[string]any{
		"candidateNextStep":   "no",
		"potentialOffer":      "no",
		"nextInterviewerName": "Grace Hopper",
		"feedback":            "Needs more practice with SQL.",
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if feedback.CandidateNextStep != core.ChoiceNo || feedback.ApproveNextInterviewRound {
		t.Fatalf("unexpected bundle: %+v", feedback)
	}

	_, err = Validate(map[string]any{"feedback": "short"})
	errs, ok := core.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	if !errs.Has(core.FieldFeedback) || !errs.Has(core.FieldNextInterviewerName) {
		t.Fatalf("unexpected errors: %v", errs.Map())
	}

	if _, err := Validate(map[string]any{"salary": 1}); !errors.Is(err, core.ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestParseCopyAndLoadContract(t *testing.T) {
	contract, err := LoadContract(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	if _, ok := contract.Field("feedback"); !ok {
		t.Fatalf("expected feedback in contract")
	}
	if _, err := ParseCopy([]byte("fields: ["), "broken.yaml"); err == nil {
		t.Fatalf("expected parse error")
	}
}
