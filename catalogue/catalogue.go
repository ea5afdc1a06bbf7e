// Package catalogue reconstructs star-formation histories from CIGALE result
// tables. A table row carries nine look-back time bins, nine rate bins and
// nine rate-error bins as fractions of the integrated stellar mass, plus the
// integrated mass itself; FromRow turns one such row into a record.
package catalogue

import (
	"fmt"

	sfhandle "github.com/WilfriedMercier/SFHandle"
	"github.com/spf13/cast"
)

// NumBins is the number of SFH bins a CIGALE row carries per series.
const NumBins = 9

// The scalar column holding the integrated stellar mass in Msun.
const integratedColumn = "bayes.sfh.integrated"

func timeColumn(i int) string {
	return fmt.Sprintf("bayes.sfh.time_bin%d", i)
}

func rateColumn(i int) string {
	return fmt.Sprintf("bayes.sfh.sfr_bin%d", i)
}

func rateErrColumn(i int) string {
	return fmt.Sprintf("bayes.sfh.sfr_bin%d_err", i)
}

// Row is a single catalogue entry, mapping column names to cell values.
type Row map[string]string

// Float returns the named cell as a float64.
func (r Row) Float(name string) (float64, error) {
	cell, ok := r[name]
	if !ok {
		return 0, fmt.Errorf("catalogue row has no column %q", name)
	}

	v, err := cast.ToFloat64E(cell)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

// FromRow reconstructs the star-formation history of one catalogue row. The
// time series is the nine time bins prefixed with an implicit zero edge; the
// rate and error series are the corresponding bin fractions scaled by the
// integrated mass, with the first bin duplicated so that all three series
// share the same length. The duplicated leading bin is a convention of the
// catalogue schema and is reproduced as-is.
func FromRow(row Row) (*sfhandle.SFH, error) {
	integrated, err := row.Float(integratedColumn)
	if err != nil {
		return nil, err
	}

	lbTime := make([]float64, 0, NumBins+1)
	rate := make([]float64, 0, NumBins+1)
	rateErr := make([]float64, 0, NumBins+1)

	lbTime = append(lbTime, 0)
	for i := 1; i <= NumBins; i++ {
		t, err := row.Float(timeColumn(i))
		if err != nil {
			return nil, err
		}
		lbTime = append(lbTime, t)
	}

	for i := 1; i <= NumBins; i++ {
		r, err := row.Float(rateColumn(i))
		if err != nil {
			return nil, err
		}
		if i == 1 {
			rate = append(rate, r*integrated) // duplicated to anchor the zero edge
		}
		rate = append(rate, r*integrated)

		e, err := row.Float(rateErrColumn(i))
		if err != nil {
			return nil, err
		}
		if i == 1 {
			rateErr = append(rateErr, e*integrated)
		}
		rateErr = append(rateErr, e*integrated)
	}

	return sfhandle.New(lbTime, rate, rateErr)
}
