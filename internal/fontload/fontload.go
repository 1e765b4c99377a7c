package fontload

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/dotmatrix/gb"
	"github.com/npillmayer/dotmatrix/hzk"
)

// FileSource returns a byte source reading a font file from disk.
// The read happens on the first load attempt, not at registration time.
func FileSource(path string) hzk.Source {
	return func(ctx context.Context) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return os.ReadFile(path)
	}
}

// LoadMappingTable reads a JSON GB2312 mapping resource from a file.
func LoadMappingTable(path string) (*gb.MappingTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapping table %s: %w", path, err)
	}
	return gb.ParseTable(data)
}

// Exists reports whether path names a readable regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
