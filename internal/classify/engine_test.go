package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceworks/invoice-pipeline/constants"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
	"github.com/invoiceworks/invoice-pipeline/internal/llm"
)

type fakeCompleter struct {
	response string
	err      error
	prompt   string
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, prompt string, _ llm.SamplingConfig) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func sampleData() entity.ExtractedData {
	qty := 2.0
	return entity.ExtractedData{
		Vendor:      "Acme Hosting",
		TotalAmount: 120.50,
		Currency:    "USD",
		LineItems: []entity.LineItem{
			{Description: "VPS hosting", Quantity: &qty, Amount: 120.50},
		},
	}
}

func TestClassifyValidResponse(t *testing.T) {
	fc := &fakeCompleter{response: `{"category":"IT Services & Software","confidence":0.92,"reasoning":"hosting services"}`}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.ITServicesSoftware), got.Category)
	assert.Equal(t, 0.92, got.Confidence)
	assert.Equal(t, "hosting services", got.Reasoning)
}

func TestClassifyFencedResponse(t *testing.T) {
	fc := &fakeCompleter{response: "```json\n{\"category\":\"Utilities\",\"confidence\":0.8,\"reasoning\":\"power bill\"}\n```"}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.Utilities), got.Category)
	assert.Equal(t, 0.8, got.Confidence)
}

func TestClassifyCompleterError(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("connection refused")}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.Other), got.Category)
	assert.Equal(t, 0.5, got.Confidence)
	assert.NotEmpty(t, got.Reasoning)
}

func TestClassifyNonJSONResponse(t *testing.T) {
	fc := &fakeCompleter{response: "I cannot categorize this invoice."}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.Other), got.Category)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestClassifyEmptyResponse(t *testing.T) {
	fc := &fakeCompleter{response: "   "}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.Other), got.Category)
}

func TestClassifyConfidenceOutOfRange(t *testing.T) {
	fc := &fakeCompleter{response: `{"category":"Utilities","confidence":1.5}`}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.Other), got.Category)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestClassifyCaseInsensitiveFieldNames(t *testing.T) {
	fc := &fakeCompleter{response: `{"Category":"Utilities","Confidence":0.9,"Reasoning":"power bill"}`}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.Utilities), got.Category)
	assert.Equal(t, 0.9, got.Confidence)
	assert.Equal(t, "power bill", got.Reasoning)
}

func TestClassifySynonymCategory(t *testing.T) {
	fc := &fakeCompleter{response: `{"category":"consulting","confidence":0.85,"reasoning":"advisory work"}`}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.ProfessionalServices), got.Category)
	assert.Equal(t, 0.85, got.Confidence)
}

func TestClassifyUnknownCategoryFallsBackToOther(t *testing.T) {
	fc := &fakeCompleter{response: `{"category":"Groceries","confidence":0.7,"reasoning":"food"}`}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	// unknown labels degrade to Other; the model's confidence survives
	assert.Equal(t, string(constants.Other), got.Category)
	assert.Equal(t, 0.7, got.Confidence)
	assert.Equal(t, "food", got.Reasoning)
}

func TestClassifyMissingReasoning(t *testing.T) {
	fc := &fakeCompleter{response: `{"category":"Office Supplies","confidence":0.6}`}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	got := e.Classify(context.Background(), sampleData())

	assert.Equal(t, string(constants.OfficeSupplies), got.Category)
	assert.NotEmpty(t, got.Reasoning)
}

func TestBuildPromptIncludesDetails(t *testing.T) {
	fc := &fakeCompleter{response: `{"category":"Other","confidence":0.5,"reasoning":"x"}`}
	e := NewEngine(fc, llm.SamplingConfig{}, nil)

	e.Classify(context.Background(), sampleData())

	require.NotEmpty(t, fc.prompt)
	assert.Contains(t, fc.prompt, "Acme Hosting")
	assert.Contains(t, fc.prompt, "120.50 USD")
	assert.Contains(t, fc.prompt, "VPS hosting")
	assert.Contains(t, fc.prompt, "(Qty: 2)")
	for _, c := range constants.AsStringSlice() {
		assert.Contains(t, fc.prompt, c)
	}
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced bare", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairJSON(tt.in))
		})
	}
}
