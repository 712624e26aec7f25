package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteTSV saves the waveform as tab-separated values with a header row.
func WriteTSV(filename string, samples []Sample) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	w.Comma = '\t'

	if err := w.Write(columns); err != nil {
		return err
	}
	for i, s := range samples {
		cells := row(i, s)
		rec := make([]string, len(cells))
		for c, v := range cells {
			rec[c] = format(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return fp.Close()
}

func format(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', 6, 64)
	case int:
		return strconv.Itoa(x)
	}
	return fmt.Sprint(v)
}
