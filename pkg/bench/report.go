package bench

import (
	"encoding/csv"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// csvHeader - Column layout of the benchmark report
var csvHeader = []string{"structure", "size", "operation", "duration_ns"}

// WriteCSV - Writes measurements as a CSV report to the given filesystem.
// The file is the interchange format consumed by external plotting steps,
// one row per measurement with durations in nanoseconds.
//   - fs is the target filesystem, afero.NewOsFs for real files or a memory filesystem in tests
//   - path is the report file path
//   - measurements is the data to write
//
// It returns:
//   - err is a standard Go error if the file could not be created or written
func WriteCSV(fs afero.Fs, path string, measurements []Measurement) (err error) {
	file, err := fs.Create(path)
	if err != nil {
		return errors.Wrap(err, "create report file")
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)

	if err = w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write report header")
	}

	for _, m := range measurements {
		record := []string{
			m.Structure,
			strconv.Itoa(m.Size),
			m.Operation,
			strconv.FormatInt(m.Duration.Nanoseconds(), 10),
		}
		if err = w.Write(record); err != nil {
			return errors.Wrap(err, "write report row")
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return errors.Wrap(err, "flush report")
	}

	return
}
