package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
)

func itemDict(desc, qty, unit, amount string) docintel.Field {
	fields := map[string]docintel.Field{}
	if desc != "" {
		fields["Description"] = docintel.NewTextField(desc)
	}
	if qty != "" {
		fields["Quantity"] = docintel.NewTextField(qty)
	}
	if unit != "" {
		fields["UnitPrice"] = docintel.NewTextField(unit)
	}
	if amount != "" {
		fields["Amount"] = docintel.NewTextField(amount)
	}
	return docintel.NewDictionaryField(desc, fields)
}

func tableOf(rows [][]string) docintel.Table {
	t := docintel.Table{RowCount: len(rows)}
	for r, row := range rows {
		if len(row) > t.ColumnCount {
			t.ColumnCount = len(row)
		}
		for c, content := range row {
			t.Cells = append(t.Cells, docintel.Cell{Row: r, Col: c, Content: content})
		}
	}
	return t
}

func TestResolveLineItemsFromListField(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{
			"Items": docintel.NewListField(
				itemDict("Consulting", "3", "$100.00", "$300.00"),
				itemDict("Hosting", "", "", "25.00"),
			),
		},
	}

	items := ResolveLineItems(res)
	require.Len(t, items, 2)

	assert.Equal(t, "Consulting", items[0].Description)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, 3.0, *items[0].Quantity)
	require.NotNil(t, items[0].UnitPrice)
	assert.Equal(t, 100.0, *items[0].UnitPrice)
	assert.Equal(t, 300.0, items[0].Amount)

	assert.Equal(t, "Hosting", items[1].Description)
	assert.Nil(t, items[1].Quantity)
	assert.Nil(t, items[1].UnitPrice)
	assert.Equal(t, 25.0, items[1].Amount)
}

func TestResolveLineItemsCandidateOrder(t *testing.T) {
	// "Item" precedes "Services" in the candidate list.
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{
			"Services": docintel.NewListField(itemDict("From Services", "", "", "1.00")),
			"Item":     docintel.NewListField(itemDict("From Item", "", "", "2.00")),
		},
	}
	items := ResolveLineItems(res)
	require.Len(t, items, 1)
	assert.Equal(t, "From Item", items[0].Description)
}

func TestResolveLineItemsListFieldBeatsTables(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{
			"Items": docintel.NewListField(itemDict("From Field", "", "", "5.00")),
		},
		Tables: []docintel.Table{tableOf([][]string{
			{"Item", "Amount"},
			{"From Table", "9.00"},
		})},
	}
	items := ResolveLineItems(res)
	require.Len(t, items, 1)
	assert.Equal(t, "From Field", items[0].Description)
}

func TestResolveLineItemsTableFallback(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{},
		Tables: []docintel.Table{tableOf([][]string{
			{"Item", "Qty", "Rate", "Amount"},
			{"Widget", "2", "10.00", "20.00"},
			{"Subtotal", "", "", "20.00"},
			{"Tax", "", "", "1.60"},
		})},
	}

	items := ResolveLineItems(res)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Description)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, 2.0, *items[0].Quantity)
	require.NotNil(t, items[0].UnitPrice)
	assert.Equal(t, 10.0, *items[0].UnitPrice)
	assert.Equal(t, 20.0, items[0].Amount)
}

func TestResolveLineItemsKeepNegativeAmounts(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{},
		Tables: []docintel.Table{tableOf([][]string{
			{"Item", "Amount"},
			{"Widget", "20.00"},
			{"Discount", "-5.00"},
		})},
	}

	items := ResolveLineItems(res)
	require.Len(t, items, 2)
	assert.Equal(t, 20.0, items[0].Amount)
	assert.Equal(t, "Discount", items[1].Description)
	assert.Equal(t, -5.0, items[1].Amount)
}

func TestResolveLineItemsNegativeAmountFromListField(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{
			"Items": docintel.NewListField(itemDict("Loyalty discount", "", "", "-10.00")),
		},
	}
	items := ResolveLineItems(res)
	require.Len(t, items, 1)
	assert.Equal(t, -10.0, items[0].Amount)
}

func TestResolveLineItemsTableWithoutUsefulColumns(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{},
		Tables: []docintel.Table{tableOf([][]string{
			{"Foo", "Bar"},
			{"a", "b"},
		})},
	}
	assert.Nil(t, ResolveLineItems(res))
}

func TestResolveLineItemsMultipleTablesConcatenated(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{},
		Tables: []docintel.Table{
			tableOf([][]string{
				{"Description", "Amount"},
				{"First", "1.00"},
			}),
			tableOf([][]string{
				{"Service", "Sub Total"},
				{"Second", "2.00"},
			}),
		},
	}
	items := ResolveLineItems(res)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Description)
	assert.Equal(t, "Second", items[1].Description)
}

func TestResolveLineItemsNoneFound(t *testing.T) {
	res := &docintel.AnalysisResult{Fields: docintel.FieldBag{}}
	assert.Nil(t, ResolveLineItems(res))
}
