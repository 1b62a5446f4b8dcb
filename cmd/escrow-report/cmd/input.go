package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"escrow-dashboard/internal/models"
	"escrow-dashboard/internal/services"
	"escrow-dashboard/internal/validation"

	"github.com/spf13/cobra"
)

type filterFlags struct {
	search  string
	year    string
	month   string
	objects []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive substring of the object name")
	cmd.Flags().StringVar(&f.year, "year", "", "four digit year")
	cmd.Flags().StringVar(&f.month, "month", "", "two digit month, requires --year")
	cmd.Flags().StringArrayVar(&f.objects, "object", nil, "object to include (repeatable, taken verbatim)")
}

// filterState validates the flags with the same rules the HTTP API applies
func (f *filterFlags) filterState() (models.FilterState, error) {
	v := validation.GetValidator().GetValidate()

	if err := v.Var(f.year, "omitempty,year"); err != nil {
		return models.FilterState{}, fmt.Errorf("invalid --year %q: must be a four digit year", f.year)
	}
	if err := v.Var(f.month, "omitempty,month_of_year"); err != nil {
		return models.FilterState{}, fmt.Errorf("invalid --month %q: must be 01-12", f.month)
	}
	if f.month != "" && f.year == "" {
		return models.FilterState{}, fmt.Errorf("--month requires --year")
	}

	return models.FilterState{
		SearchText:      f.search,
		Year:            f.year,
		Month:           f.month,
		SelectedObjects: f.objects,
	}, nil
}

// loadRows reads a JSON array of loosely typed escrow rows and normalizes them
func loadRows(cmd *cobra.Command, path string) ([]models.TransactionRow, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []models.RawRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}

	return services.NormalizeRows(records), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
