package harness

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r *Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadJSON decodes results written by WriteJSON and checks that every
// series has one entry per size.
func ReadJSON(rd io.Reader) (*Results, error) {
	var r Results
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	for _, name := range r.Algorithms {
		if got := len(r.Series[name]); got != len(r.Sizes) {
			return nil, fmt.Errorf("series %q has %d samples for %d sizes", name, got, len(r.Sizes))
		}
	}
	return &r, nil
}

// SaveJSON writes r to path.
func SaveJSON(path string, r *Results) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadJSON reads results previously written with SaveJSON.
func LoadJSON(path string) (*Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteCSV writes one row per size: n followed by each algorithm's average
// in seconds, in the order of r.Algorithms.
func WriteCSV(w io.Writer, r *Results) error {
	cw := csv.NewWriter(w)
	header := []string{"n"}
	for _, name := range r.Algorithms {
		header = append(header, strings.ToLower(name)+"_seconds")
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for i, n := range r.Sizes {
		row[0] = strconv.Itoa(n)
		for j, name := range r.Algorithms {
			row[j+1] = strconv.FormatFloat(r.Series[name][i].Seconds(), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
