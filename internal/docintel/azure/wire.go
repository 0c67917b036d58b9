package azure

import (
	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
)

// Wire shapes for the Document Intelligence analyze operation.

type analyzeOperation struct {
	Status        string         `json:"status"`
	AnalyzeResult *analyzeResult `json:"analyzeResult"`
	Error         struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type analyzeResult struct {
	Content   string         `json:"content"`
	Pages     []wirePage     `json:"pages"`
	Tables    []wireTable    `json:"tables"`
	Documents []wireDocument `json:"documents"`
}

type wirePage struct {
	Lines []struct {
		Content string `json:"content"`
	} `json:"lines"`
}

type wireTable struct {
	RowCount    int `json:"rowCount"`
	ColumnCount int `json:"columnCount"`
	Cells       []struct {
		RowIndex    int    `json:"rowIndex"`
		ColumnIndex int    `json:"columnIndex"`
		Content     string `json:"content"`
	} `json:"cells"`
}

type wireDocument struct {
	Fields map[string]wireField `json:"fields"`
}

type wireField struct {
	Type          string               `json:"type"`
	Content       string               `json:"content"`
	ValueString   *string              `json:"valueString"`
	ValueDate     *string              `json:"valueDate"`
	ValueNumber   *float64             `json:"valueNumber"`
	ValueInteger  *int64               `json:"valueInteger"`
	ValueCurrency *wireCurrency        `json:"valueCurrency"`
	ValueArray    []wireField          `json:"valueArray"`
	ValueObject   map[string]wireField `json:"valueObject"`
}

type wireCurrency struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}

func convertResult(raw *analyzeResult) *docintel.AnalysisResult {
	out := &docintel.AnalysisResult{
		Fields:  docintel.FieldBag{},
		Content: raw.Content,
	}

	for _, p := range raw.Pages {
		page := docintel.Page{Lines: make([]string, 0, len(p.Lines))}
		for _, l := range p.Lines {
			page.Lines = append(page.Lines, l.Content)
		}
		out.Pages = append(out.Pages, page)
	}

	for _, t := range raw.Tables {
		table := docintel.Table{
			RowCount:    t.RowCount,
			ColumnCount: t.ColumnCount,
			Cells:       make([]docintel.Cell, 0, len(t.Cells)),
		}
		for _, c := range t.Cells {
			table.Cells = append(table.Cells, docintel.Cell{
				Row:     c.RowIndex,
				Col:     c.ColumnIndex,
				Content: c.Content,
			})
		}
		out.Tables = append(out.Tables, table)
	}

	// The prebuilt invoice model returns one document per invoice; take
	// the first.
	if len(raw.Documents) > 0 {
		for name, f := range raw.Documents[0].Fields {
			out.Fields[name] = convertField(f)
		}
	}
	return out
}

func convertField(w wireField) docintel.Field {
	switch w.Type {
	case "number", "integer", "currency":
		var v float64
		switch {
		case w.ValueNumber != nil:
			v = *w.ValueNumber
		case w.ValueInteger != nil:
			v = float64(*w.ValueInteger)
		case w.ValueCurrency != nil:
			v = w.ValueCurrency.Amount
		}
		return docintel.NewNumberField(v, w.Content)
	case "array":
		items := make([]docintel.Field, 0, len(w.ValueArray))
		for _, it := range w.ValueArray {
			items = append(items, convertField(it))
		}
		return docintel.NewListField(items...)
	case "object":
		fields := make(map[string]docintel.Field, len(w.ValueObject))
		for name, f := range w.ValueObject {
			fields[name] = convertField(f)
		}
		return docintel.NewDictionaryField(w.Content, fields)
	default:
		// string, date, address, phoneNumber, ... all degrade to text.
		// Prefer the page content, which is what downstream mapping reads.
		if w.Content == "" && w.ValueString != nil {
			return docintel.NewTextField(*w.ValueString)
		}
		return docintel.NewTextField(w.Content)
	}
}
