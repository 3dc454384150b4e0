package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"

	"github.com/patefield-go/patefield/rcont"
)

// writeBatch serializes a batch of tables to w.
//
// csv: one record per table row, tables concatenated in order, so a batch
// of N tables of R rows yields N*R records.
// json: an array of tables, each a row-major array of rows.
func writeBatch(w io.Writer, batch *rcont.Batch[int64], format string) error {
	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		for i := 0; i < batch.Count(); i++ {
			table := batch.Table(i)
			for r := 0; r < table.NRows(); r++ {
				record := lo.Map(table.Row(r), func(v int64, _ int) string {
					return strconv.FormatInt(v, 10)
				})
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
		cw.Flush()
		return cw.Error()

	case "json":
		tables := make([][][]int64, batch.Count())
		for i := 0; i < batch.Count(); i++ {
			table := batch.Table(i)
			rows := make([][]int64, table.NRows())
			for r := 0; r < table.NRows(); r++ {
				rows[r] = table.Row(r)
			}
			tables[i] = rows
		}
		enc := json.NewEncoder(w)
		return enc.Encode(tables)

	default:
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	}
}
