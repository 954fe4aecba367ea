// Package csvfile loads the delimited storm dataset into a domain.Table.
package csvfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

// ErrStructure marks a structurally malformed source file: inconsistent row
// shape, no header, or no data rows. Structural errors are fatal and abort
// the run before analysis.
var ErrStructure = errors.New("malformed source table")

// Loader reads a delimited text file through a gota dataframe, which handles
// header binding and per-column type inference. The analysis columns are
// pinned to string so suffix codes and labels survive verbatim.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the file at path into a Table. Column names come from the
// header row; every cell is carried as its string form.
func (l *Loader) Load(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.WithDelimiter(','),
		dataframe.WithTypes(map[string]series.Type{
			domain.ColEventType:  series.String,
			domain.ColPropDmgExp: series.String,
			domain.ColCropDmgExp: series.String,
		}),
	)
	if df.Err != nil {
		return domain.Table{}, fmt.Errorf("%w: %v", ErrStructure, df.Err)
	}

	records := df.Records()
	if len(records) < 2 {
		return domain.Table{}, fmt.Errorf("%w: no data rows in %s", ErrStructure, path)
	}

	table := domain.Table{
		Columns: records[0],
		Rows:    records[1:],
	}

	l.logger.Info("dataset loaded",
		"path", path,
		"rows", table.NumRows(),
		"columns", len(table.Columns),
	)

	return table, nil
}
