package extract

import (
	"strings"

	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
)

// Candidate field names for the structured line-item list, probed in
// order; the first list-typed match wins.
var lineItemFieldNames = []string{
	"Item", "Items", "LineItems", "Services", "Products", "Details",
}

type lineItemSource func(*docintel.AnalysisResult) []entity.LineItem

var lineItemSources = []lineItemSource{
	lineItemsFromFields,
	lineItemsFromTables,
}

// ResolveLineItems returns the invoice's line items, preferring the
// structured list field and falling back to table-cell heuristics.
// It returns nil (not an empty slice) when neither path found anything,
// so callers can distinguish "none found" from "explicitly empty".
func ResolveLineItems(res *docintel.AnalysisResult) []entity.LineItem {
	for _, source := range lineItemSources {
		if items := source(res); len(items) > 0 {
			return items
		}
	}
	return nil
}

func lineItemsFromFields(res *docintel.AnalysisResult) []entity.LineItem {
	var list []docintel.Field
	for _, name := range lineItemFieldNames {
		if f, ok := res.Fields.Get(name); ok {
			if l, ok := f.List(); ok {
				list = l
				break
			}
		}
	}

	var items []entity.LineItem
	for _, f := range list {
		dict, ok := f.Dictionary()
		if !ok {
			continue
		}
		items = append(items, entity.LineItem{
			Description: strings.TrimSpace(dictContent(dict, "Description")),
			Quantity:    parseOptionalAmount(dictContent(dict, "Quantity")),
			UnitPrice:   parseOptionalAmount(dictContent(dict, "UnitPrice")),
			Amount:      parseLineAmount(dictContent(dict, "Amount")),
		})
	}
	return items
}

func dictContent(dict map[string]docintel.Field, key string) string {
	f, ok := dict[key]
	if !ok {
		return ""
	}
	return f.Content()
}

// Header keywords classifying a table column into one of four roles.
var (
	descHeaderWords   = []string{"item", "description", "product", "service"}
	qtyHeaderWords    = []string{"qty", "quantity", "hrs"}
	unitHeaderWords   = []string{"rate", "price", "unit", "cost"}
	amountHeaderWords = []string{"amount", "sub total", "subtotal"}
)

// Rows whose description cell carries one of these are summary rows,
// not line items.
var summaryRowWords = []string{"subtotal", "shipping", "total", "tax"}

type tableColumns struct {
	desc   int
	qty    int
	unit   int
	amount int
}

// lineItemsFromTables reads every detected table, inferring column
// roles from the header row. Tables without a description or amount
// column are skipped; results from qualifying tables are concatenated.
func lineItemsFromTables(res *docintel.AnalysisResult) []entity.LineItem {
	var items []entity.LineItem
	for _, table := range res.Tables {
		items = append(items, lineItemsFromTable(table)...)
	}
	return items
}

func lineItemsFromTable(table docintel.Table) []entity.LineItem {
	grid := make(map[int]map[int]string, table.RowCount)
	for _, cell := range table.Cells {
		row, ok := grid[cell.Row]
		if !ok {
			row = make(map[int]string, table.ColumnCount)
			grid[cell.Row] = row
		}
		row[cell.Col] = cell.Content
	}

	cols := classifyHeader(grid[0], table.ColumnCount)
	if cols.desc < 0 && cols.amount < 0 {
		return nil
	}

	var items []entity.LineItem
	for r := 1; r < table.RowCount; r++ {
		row := grid[r]
		if len(row) == 0 {
			continue
		}
		desc := strings.TrimSpace(cellAt(row, cols.desc))
		if containsAnyToken(strings.ToLower(desc), summaryRowWords) {
			continue
		}
		amountRaw := cellAt(row, cols.amount)
		if desc == "" && strings.TrimSpace(amountRaw) == "" {
			continue
		}
		items = append(items, entity.LineItem{
			Description: desc,
			Quantity:    parseOptionalAmount(cellAt(row, cols.qty)),
			UnitPrice:   parseOptionalAmount(cellAt(row, cols.unit)),
			Amount:      parseLineAmount(amountRaw),
		})
	}
	return items
}

func classifyHeader(header map[int]string, columnCount int) tableColumns {
	cols := tableColumns{desc: -1, qty: -1, unit: -1, amount: -1}
	for c := 0; c < columnCount; c++ {
		text := strings.ToLower(strings.TrimSpace(header[c]))
		if text == "" {
			continue
		}
		switch {
		case cols.desc < 0 && containsAnyToken(text, descHeaderWords):
			cols.desc = c
		case cols.qty < 0 && containsAnyToken(text, qtyHeaderWords):
			cols.qty = c
		case cols.unit < 0 && containsAnyToken(text, unitHeaderWords):
			cols.unit = c
		case cols.amount < 0 && containsAnyToken(text, amountHeaderWords):
			cols.amount = c
		}
	}
	return cols
}

func cellAt(row map[int]string, col int) string {
	if col < 0 {
		return ""
	}
	return row[col]
}
