// Package contentfile reads and writes the static content store: a
// directory holding one JSON document per content collection.
package contentfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dalemusser/stratatour/internal/app/store/content"
)

// Source loads collections from a content directory.
type Source struct {
	dir string
}

// NewSource returns a Source reading from dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Dir returns the content directory.
func (s *Source) Dir() string { return s.dir }

// Load decodes the collection's file into dst. An absent file returns
// content.ErrCollectionMissing.
func (s *Source) Load(ctx context.Context, collection string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := content.FileName(collection)
	if name == "" {
		return fmt.Errorf("unknown collection %q", collection)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return content.ErrCollectionMissing
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
