package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"curveval/domain/eval"
	"curveval/domain/metric"
)

func sampleTable() *eval.ComparisonTable {
	return &eval.ComparisonTable{
		Baseline:           "baseline",
		Metric:             metric.NewDescription("Logloss", false),
		LeftQuantileTitle:  "Quantile 0.005",
		RightQuantileTitle: "Quantile 0.995",
		Rows: []eval.ComparisonRow{
			{
				Case:          "faster-lr",
				PValue:        0.9949,
				Score:         12.5,
				LeftQuantile:  4.2,
				RightQuantile: 20.1,
				Decision:      eval.DecisionGood,
			},
			{
				Case:          "deeper-trees",
				PValue:        0.6123,
				Score:         -3.4,
				LeftQuantile:  -9.9,
				RightQuantile: 2.2,
				Decision:      eval.DecisionUnknown,
			},
		},
	}
}

func overfitTable() *eval.ComparisonTable {
	table := sampleTable()
	table.Metric = metric.NewDescription("AUC", true)
	for i := range table.Rows {
		table.Rows[i].Overfit = &eval.OverfitInfo{IterDiff: 20, IterPValue: 0.995}
	}
	return table
}

func TestMarkdownRenderer_Table(t *testing.T) {
	out := NewMarkdownRenderer().Table(sampleTable())

	assert.Contains(t, out, "## Logloss (min-optimal)")
	assert.Contains(t, out, "Baseline case: `baseline`")
	assert.Contains(t, out, "| Case | PValue | Score | Quantile 0.005 | Quantile 0.995 | Decision |")
	assert.Contains(t, out, "| faster-lr | 0.9949 | 12.5000 | 4.2000 | 20.1000 | GOOD |")
	assert.Contains(t, out, "| deeper-trees | 0.6123 | -3.4000 | -9.9000 | 2.2000 | UNKNOWN |")
	assert.NotContains(t, out, "Overfit")
}

func TestMarkdownRenderer_TableWithOverfitColumns(t *testing.T) {
	out := NewMarkdownRenderer().Table(overfitTable())

	assert.Contains(t, out, "Overfit iter diff | Overfit iter pValue |")
	assert.Contains(t, out, "| 20.00 | 0.9950 |")
}

func TestMarkdownRenderer_Session(t *testing.T) {
	r := NewMarkdownRenderer()
	tables := map[string]*eval.ComparisonTable{
		"Logloss": sampleTable(),
		"AUC":     overfitTable(),
	}

	out := r.Session([]string{"Logloss", "AUC", "absent"}, tables)

	assert.True(t, strings.HasPrefix(out, "# Model comparison report"))
	// Sections follow the given metric order.
	assert.Less(t, strings.Index(out, "## Logloss"), strings.Index(out, "## AUC"))
	assert.NotContains(t, out, "absent")
}

func TestMarkdownRenderer_HTML(t *testing.T) {
	r := NewMarkdownRenderer()
	md := r.Table(sampleTable())

	page := string(r.HTML(md))
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<td>faster-lr</td>")
	assert.Contains(t, page, "<h2>Logloss (min-optimal)</h2>")
}

func TestExcelExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	tables := map[string]*eval.ComparisonTable{
		"Logloss": sampleTable(),
		"AUC":     overfitTable(),
	}

	require.NoError(t, NewExcelExporter().Export(path, []string{"Logloss", "AUC"}, tables))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Logloss", "AUC"}, f.GetSheetList())

	header, err := f.GetCellValue("Logloss", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Case", header)

	firstCase, err := f.GetCellValue("Logloss", "A2")
	require.NoError(t, err)
	assert.Equal(t, "faster-lr", firstCase)

	decision, err := f.GetCellValue("Logloss", "F3")
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", decision)

	iterDiff, err := f.GetCellValue("AUC", "G2")
	require.NoError(t, err)
	assert.Equal(t, "20", iterDiff)
}

func TestExcelExporter_EmptyExport(t *testing.T) {
	err := NewExcelExporter().Export(filepath.Join(t.TempDir(), "empty.xlsx"), nil, nil)
	assert.Error(t, err)
}

func TestExcelExporter_LongMetricNameTruncated(t *testing.T) {
	long := strings.Repeat("VeryLongMetricName", 3) // 54 chars
	path := filepath.Join(t.TempDir(), "long.xlsx")
	tables := map[string]*eval.ComparisonTable{long: sampleTable()}

	require.NoError(t, NewExcelExporter().Export(path, []string{long}, tables))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{long[:31]}, f.GetSheetList())
}
