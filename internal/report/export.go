package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}

	return cw.Error()
}

// Filename builds a timestamped export name such as MuniAPMs_Task_Schedule_20250101_093000.csv.
func Filename(prefix string, base string, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.%s", prefix, base, now.Format("20060102_150405"), ext)
}
