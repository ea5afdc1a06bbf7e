package catalogue

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	sfhandle "github.com/WilfriedMercier/SFHandle"
	"github.com/google/uuid"
)

// The column used to key records in a collection, when present.
const idColumn = "id"

// Table is a loaded catalogue: a header row naming the columns and one row of
// cells per galaxy.
type Table struct {
	columns []string
	rows    [][]string
}

// Load reads a comma-delimited catalogue with a header row from a file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalogue: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read reads a comma-delimited catalogue with a header row.
func Read(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("catalogue has no header row")
	}

	return &Table{columns: records[0], rows: records[1:]}, nil
}

// Len returns the number of rows in the table, not counting the header.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the column names of the table.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Row returns the i-th row as a column-name to cell mapping.
func (t *Table) Row(i int) Row {
	row := make(Row, len(t.columns))
	for j, name := range t.columns {
		if j < len(t.rows[i]) {
			row[name] = t.rows[i][j]
		}
	}
	return row
}

// Collection reconstructs every row of the table into a keyed set of records.
// Rows are keyed by their id column when the table has one and by a fresh
// UUID otherwise.
func (t *Table) Collection() (sfhandle.Collection, error) {
	records := sfhandle.Collection{}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)

		rec, err := FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		if id, ok := row[idColumn]; ok && id != "" {
			records.Set(id, rec)
		} else {
			records.Set(uuid.New().String(), rec)
		}
	}
	return records, nil
}
