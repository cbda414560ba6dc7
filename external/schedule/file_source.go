package schedule

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/foxseedlab/pitwall/internal/schedule"
)

var documentExtensions = []string{".json", ".yaml", ".yml"}

// FileSource reads one document per season from dir, named after the year.
// Files are read on every Load so an edited schedule is picked up without a
// restart.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Load(ctx context.Context, year int) (*schedule.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range documentExtensions {
		path := filepath.Join(s.dir, strconv.Itoa(year)+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read schedule %s: %w", path, err)
		}
		table, err := schedule.DecodeTable(year, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode schedule %s: %w", path, err)
		}
		return table, nil
	}
	return nil, fmt.Errorf("%w: no document for %d in %s", schedule.ErrNotFound, year, s.dir)
}
