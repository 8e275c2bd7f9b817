package render

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"hydroplot/hydropathy"
)

// WriteTSV writes the profile as tab-separated position/value rows with a
// header line.
func WriteTSV(w io.Writer, prof hydropathy.Profile) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	defer writer.Flush()

	if err := writer.Write([]string{"position", "hydropathy_index"}); err != nil {
		return err
	}
	for i := range prof.Positions {
		row := []string{
			strconv.Itoa(prof.Positions[i]),
			strconv.FormatFloat(prof.Values[i], 'f', 3, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTSVFile writes the profile to filename + ".tsv".
func WriteTSVFile(filename string, prof hydropathy.Profile) error {
	f, err := os.Create(filename + ".tsv")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTSV(f, prof)
}
