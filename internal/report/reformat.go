// Package report turns collected inventories into aligned text tables.
package report

// Record is one logical table entry before flattening: scalar cells indexed
// by column, plus the values of the record's single multi-valued column. The
// cell at the list column's index is ignored.
type Record struct {
	Cells []string
	List  []string
}

// Reformat expands each record into one row per list element. The identity
// column repeats on every row so the rows of one record stay grouped; every
// other scalar column appears only on the record's first row. A record with
// an empty list yields a single row carrying the placeholder in the list
// column.
func Reformat(records []Record, identityCol, listCol int, placeholder string) [][]string {
	var rows [][]string
	for _, rec := range records {
		list := rec.List
		if len(list) == 0 {
			list = []string{placeholder}
		}
		for i, item := range list {
			row := make([]string, len(rec.Cells))
			if i == 0 {
				copy(row, rec.Cells)
			} else {
				row[identityCol] = rec.Cells[identityCol]
			}
			row[listCol] = item
			rows = append(rows, row)
		}
	}
	return rows
}
