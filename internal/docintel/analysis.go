package docintel

import "context"

// Page holds the recognized text lines of one page, in reading order.
type Page struct {
	Lines []string
}

// Cell is one table cell with its grid position.
type Cell struct {
	Row     int
	Col     int
	Content string
}

// Table is one detected table; Cells may be sparse.
type Table struct {
	RowCount    int
	ColumnCount int
	Cells       []Cell
}

// AnalysisResult is everything the document model produced for one
// invoice: the semantic field bag plus page layout, table geometry, and
// the full recognized text.
type AnalysisResult struct {
	Fields  FieldBag
	Pages   []Page
	Tables  []Table
	Content string
}

// FirstPageLines returns the text lines of page one, or nil.
func (r *AnalysisResult) FirstPageLines() []string {
	if len(r.Pages) == 0 {
		return nil
	}
	return r.Pages[0].Lines
}

// Analyzer is the document-analysis collaborator contract.
type Analyzer interface {
	Analyze(ctx context.Context, content []byte, contentType string) (*AnalysisResult, error)
}
