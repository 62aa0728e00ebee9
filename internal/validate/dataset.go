// Package validate loads measured propeller data and scores model
// predictions against it.
package validate

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Dataset is a table of measured operating points. The coefficient
// columns are optional and nil when the source file lacks them.
type Dataset struct {
	RPM    []float64
	V      []float64
	Thrust []float64
	Torque []float64
	J      []float64
	CT     []float64
	CP     []float64
}

// Len returns the number of measured points.
func (d *Dataset) Len() int { return len(d.RPM) }

// Column aliases accepted in CSV headers, lowercased.
var columnAliases = map[string]string{
	"rpm":      "rpm",
	"n":        "rpm",
	"v":        "v",
	"velocity": "v",
	"t":        "t",
	"thrust":   "t",
	"q":        "q",
	"torque":   "q",
	"j":        "j",
	"ct":       "ct",
	"cp":       "cp",
}

var requiredColumns = []string{"rpm", "v", "t", "q"}

// LoadCSV reads a measured dataset. Columns may appear in any order and
// headers are case-insensitive; the rpm, velocity, thrust, and torque
// columns must be present. Unrecognized columns are ignored.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadData, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s has no data rows", ErrBadData, path)
	}

	cols := make(map[string]int)
	for i, name := range records[0] {
		if canon, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			cols[canon] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	n := len(records) - 1
	ds := &Dataset{
		RPM:    make([]float64, 0, n),
		V:      make([]float64, 0, n),
		Thrust: make([]float64, 0, n),
		Torque: make([]float64, 0, n),
	}
	if _, ok := cols["j"]; ok {
		ds.J = make([]float64, 0, n)
	}
	if _, ok := cols["ct"]; ok {
		ds.CT = make([]float64, 0, n)
	}
	if _, ok := cols["cp"]; ok {
		ds.CP = make([]float64, 0, n)
	}

	cell := func(record []string, canon string, row int) (float64, error) {
		idx := cols[canon]
		if idx >= len(record) {
			return 0, fmt.Errorf("%w: row %d is missing column %q", ErrBadData, row, canon)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: row %d column %q: %v", ErrBadData, row, canon, err)
		}
		return v, nil
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		rpm, err := cell(record, "rpm", i)
		if err != nil {
			return nil, err
		}
		v, err := cell(record, "v", i)
		if err != nil {
			return nil, err
		}
		thrust, err := cell(record, "t", i)
		if err != nil {
			return nil, err
		}
		torque, err := cell(record, "q", i)
		if err != nil {
			return nil, err
		}
		ds.RPM = append(ds.RPM, rpm)
		ds.V = append(ds.V, v)
		ds.Thrust = append(ds.Thrust, thrust)
		ds.Torque = append(ds.Torque, torque)

		for canon, dst := range map[string]*[]float64{"j": &ds.J, "ct": &ds.CT, "cp": &ds.CP} {
			if *dst == nil {
				continue
			}
			val, err := cell(record, canon, i)
			if err != nil {
				return nil, err
			}
			*dst = append(*dst, val)
		}
	}

	if ds.Len() == 0 {
		return nil, fmt.Errorf("%w: %s has no data rows", ErrBadData, path)
	}
	return ds, nil
}
