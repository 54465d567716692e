package contentfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/dalemusser/stratatour/internal/app/store/content"
)

// Writer stages collection files next to their final location and moves
// them into place together on Commit. Nothing in the target directory
// changes until every collection has serialized successfully.
//
// A Writer is single use: call Stage for each collection, then exactly one
// of Commit or Abort.
type Writer struct {
	dir    string
	staged []stagedFile
	done   bool
}

type stagedFile struct {
	tmp   string
	final string
}

// NewWriter returns a Writer targeting dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Marshal encodes v the way every content file is written: two-space
// indented JSON with a trailing newline. Map keys are sorted by
// encoding/json, so identical input always yields identical bytes.
// A nil slice is written as [] so list files always hold an array.
func Marshal(v any) ([]byte, error) {
	if rv := reflect.Indirect(reflect.ValueOf(v)); rv.Kind() == reflect.Slice && rv.IsNil() {
		v = []struct{}{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stage serializes v into a temp file for collection.
func (w *Writer) Stage(collection string, v any) error {
	if w.done {
		return errors.New("writer already committed or aborted")
	}

	name := content.FileName(collection)
	if name == "" {
		return fmt.Errorf("unknown collection %q", collection)
	}

	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	f, err := os.CreateTemp(w.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("stage %s: %w", name, err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("stage %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("stage %s: %w", name, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("stage %s: %w", name, err)
	}

	w.staged = append(w.staged, stagedFile{tmp: tmp, final: filepath.Join(w.dir, name)})
	return nil
}

// StageDataset stages every collection of ds.
func (w *Writer) StageDataset(ds *content.Dataset) error {
	for _, e := range ds.Entries() {
		if err := w.Stage(e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Commit renames every staged file over its final name. Renames within one
// directory are atomic per file; a failure part way through leaves the
// remaining temps removed and reports the error.
func (w *Writer) Commit() error {
	if w.done {
		return errors.New("writer already committed or aborted")
	}
	w.done = true

	for i, s := range w.staged {
		if err := os.Rename(s.tmp, s.final); err != nil {
			removeTemps(w.staged[i:])
			return fmt.Errorf("commit %s: %w", filepath.Base(s.final), err)
		}
	}
	w.staged = nil
	return nil
}

// Abort discards all staged files. It is safe to call after Commit.
func (w *Writer) Abort() {
	if w.done {
		return
	}
	w.done = true
	removeTemps(w.staged)
	w.staged = nil
}

// Staged returns the final paths staged so far.
func (w *Writer) Staged() []string {
	out := make([]string, len(w.staged))
	for i, s := range w.staged {
		out[i] = s.final
	}
	return out
}

func removeTemps(files []stagedFile) {
	for _, s := range files {
		os.Remove(s.tmp)
	}
}
