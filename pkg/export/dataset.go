package export

import "fmt"

// Column describes one exported field. Width is a relative weight used by
// the PDF renderer; zero counts as one.
type Column struct {
	Key   string
	Title string
	Width float64
}

// Dataset is tabular export content keyed by Column.Key.
type Dataset struct {
	Title   string
	Columns []Column
	Rows    []map[string]string
}

// Headers returns the column titles, falling back to keys.
func (d Dataset) Headers() []string {
	headers := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		headers[i] = col.Title
		if headers[i] == "" {
			headers[i] = col.Key
		}
	}
	return headers
}

func (d Dataset) record(row map[string]string) []string {
	record := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		record[i] = row[col.Key]
	}
	return record
}

func (d Dataset) validate(format string) error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("%s requires at least one column", format)
	}
	return nil
}
