package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// CSVDecoder decodes "seconds,nanoseconds,amplitude" lines.
type CSVDecoder struct{}

// Decode reads all records from r.
func (CSVDecoder) Decode(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var recs []Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record: csv: %w: %w", err, core.ErrValidation)
		}

		line, _ := cr.FieldPos(0)
		rec, err := parseFields(fields)
		if err != nil {
			return nil, fmt.Errorf("record: csv line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseFields(fields []string) (Record, error) {
	sec, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("seconds: %w: %w", err, core.ErrValidation)
	}
	ns, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("nanoseconds: %w: %w", err, core.ErrValidation)
	}
	amp, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("amplitude: %w: %w", err, core.ErrValidation)
	}
	return Record{Seconds: int32(sec), Nanoseconds: int32(ns), Amplitude: amp}, nil
}

// CSVEncoder writes "seconds,nanoseconds,amplitude" lines. Amplitudes use
// the shortest representation that parses back to the same float64.
type CSVEncoder struct{}

// Encode writes recs to w.
func (CSVEncoder) Encode(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	row := make([]string, 3)
	for _, r := range recs {
		row[0] = strconv.FormatInt(int64(r.Seconds), 10)
		row[1] = strconv.FormatInt(int64(r.Nanoseconds), 10)
		row[2] = strconv.FormatFloat(r.Amplitude, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("record: encode csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("record: encode csv: %w", err)
	}
	return nil
}
