package catalogue_test

import (
	"fmt"
	"strings"
	"testing"

	sfhandle "github.com/WilfriedMercier/SFHandle"
	"github.com/WilfriedMercier/SFHandle/catalogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRow builds a catalogue row with time bins 10,20..90, rate bins
// 0.1,0.2..0.9, error bins 0.01..0.09 and an integrated mass of 100.
func testRow() catalogue.Row {
	row := catalogue.Row{
		"id":                   "galaxy-1",
		"bayes.sfh.integrated": "100",
	}
	for i := 1; i <= catalogue.NumBins; i++ {
		row[fmt.Sprintf("bayes.sfh.time_bin%d", i)] = fmt.Sprintf("%d", i*10)
		row[fmt.Sprintf("bayes.sfh.sfr_bin%d", i)] = fmt.Sprintf("0.%d", i)
		row[fmt.Sprintf("bayes.sfh.sfr_bin%d_err", i)] = fmt.Sprintf("0.0%d", i)
	}
	return row
}

func TestFromRow(t *testing.T) {
	rec, err := catalogue.FromRow(testRow())
	require.NoError(t, err)

	// implicit zero edge before the nine time bins
	assert.Equal(t, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}, rec.LookbackTime())

	// the first bin anchors the zero edge, so it appears twice
	wantRate := []float64{10, 10, 20, 30, 40, 50, 60, 70, 80, 90}
	wantErr := []float64{1, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := range wantRate {
		assert.InDelta(t, wantRate[i], rec.Rate()[i], 1e-12)
		assert.InDelta(t, wantErr[i], rec.RateError()[i], 1e-12)
	}

	assert.Equal(t, rec.Len(), catalogue.NumBins+1)
}

func TestFromRowMissingColumn(t *testing.T) {
	row := testRow()
	delete(row, "bayes.sfh.sfr_bin5")

	_, err := catalogue.FromRow(row)
	assert.ErrorContains(t, err, "bayes.sfh.sfr_bin5")
}

func TestFromRowNonNumericCell(t *testing.T) {
	row := testRow()
	row["bayes.sfh.time_bin3"] = "not-a-number"

	_, err := catalogue.FromRow(row)
	assert.ErrorContains(t, err, "bayes.sfh.time_bin3")
}

func TestFromRowMissingIntegrated(t *testing.T) {
	row := testRow()
	delete(row, "bayes.sfh.integrated")

	_, err := catalogue.FromRow(row)
	assert.ErrorContains(t, err, "bayes.sfh.integrated")
}

// csvFixture renders rows in the catalogue's delimited format.
func csvFixture(rows ...catalogue.Row) string {
	columns := []string{"id", "bayes.sfh.integrated"}
	for i := 1; i <= catalogue.NumBins; i++ {
		columns = append(columns,
			fmt.Sprintf("bayes.sfh.time_bin%d", i),
			fmt.Sprintf("bayes.sfh.sfr_bin%d", i),
			fmt.Sprintf("bayes.sfh.sfr_bin%d_err", i),
		)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(columns, ","))
	sb.WriteByte('\n')
	for _, row := range rows {
		cells := make([]string, len(columns))
		for j, name := range columns {
			cells[j] = row[name]
		}
		sb.WriteString(strings.Join(cells, ","))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestReadAndCollection(t *testing.T) {
	table, err := catalogue.Read(strings.NewReader(csvFixture(testRow())))
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	records, err := table.Collection()
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec, ok := records["galaxy-1"]
	require.True(t, ok)
	assert.Equal(t, catalogue.NumBins+1, rec.Len())
}

func TestCollectionFallsBackToUUIDKeys(t *testing.T) {
	row := testRow()
	delete(row, "id")

	table, err := catalogue.Read(strings.NewReader(csvFixture(row)))
	require.NoError(t, err)

	records, err := table.Collection()
	require.NoError(t, err)
	require.Len(t, records, 1)

	for key := range records {
		assert.NotEmpty(t, key)
		assert.NotEqual(t, "galaxy-1", key)
	}
}

func TestReadEmptyInput(t *testing.T) {
	_, err := catalogue.Read(strings.NewReader(""))
	assert.Error(t, err)
}

// End to end: a catalogue-derived record resamples and integrates like any
// other record.
func TestCatalogueRecordEndToEnd(t *testing.T) {
	rec, err := catalogue.FromRow(testRow())
	require.NoError(t, err)

	grid, err := sfhandle.Geomspace(1, 90, 20)
	require.NoError(t, err)

	rate, rateErr, err := rec.Resample(grid, sfhandle.Options{})
	require.NoError(t, err)
	assert.Len(t, rate, 20)
	assert.Len(t, rateErr, 20)

	assert.Greater(t, rec.Integral(), 0.0)
	assert.Equal(t, rec.Integral(), rec.IntegralAt(0))
}
