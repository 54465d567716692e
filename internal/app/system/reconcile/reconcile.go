// Package reconcile builds the canonical district list from the primary
// district source file and the hand-maintained supplementary records.
package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dalemusser/stratatour/internal/app/system/slugs"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"go.uber.org/zap"
)

// CommentKey marks an annotation-only record in the primary source.
// Records carrying it are authoring notes and never reach the output.
const CommentKey = "_comment"

// ErrSourceMissing is returned when the primary source file does not exist.
var ErrSourceMissing = errors.New("primary district source missing")

// ReadPrimary reads the primary district source at path. It returns the
// district records in file order and the number of comment records that
// were dropped.
func ReadPrimary(path string) ([]models.District, int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, fmt.Errorf("%w: %s", ErrSourceMissing, path)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	return ParsePrimary(data)
}

// ParsePrimary parses the contents of a primary district source. A record
// without a slug gets one derived from its name.
func ParsePrimary(data []byte) ([]models.District, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("parse primary source: %w", err)
	}

	districts := make([]models.District, 0, len(raw))
	comments := 0
	for i, r := range raw {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(r, &keys); err != nil {
			return nil, 0, fmt.Errorf("parse primary source record %d: %w", i, err)
		}
		if _, ok := keys[CommentKey]; ok {
			comments++
			continue
		}

		var d models.District
		if err := json.Unmarshal(r, &d); err != nil {
			return nil, 0, fmt.Errorf("parse primary source record %d: %w", i, err)
		}
		if d.Slug == "" {
			d.Slug = slugs.From(d.Name)
		}
		districts = append(districts, d)
	}
	return districts, comments, nil
}

// Result is the outcome of a merge.
type Result struct {
	Districts []models.District
	// Replaced lists ids whose primary record was overridden by a
	// supplementary record, in the order they were replaced.
	Replaced []string
}

// Merge appends supplementary to primary, keeping primary order. A
// supplementary record whose id is already present replaces that record
// in place and is logged as a warning, so ids in the result are unique
// across the supplementary list.
func Merge(primary, supplementary []models.District, logger *zap.Logger) Result {
	out := make([]models.District, 0, len(primary)+len(supplementary))
	out = append(out, primary...)

	pos := make(map[string]int, len(out))
	for i, d := range out {
		if _, dup := pos[d.ID]; !dup {
			pos[d.ID] = i
		}
	}

	var replaced []string
	for _, d := range supplementary {
		if i, ok := pos[d.ID]; ok {
			logger.Warn("supplementary district replaces existing record",
				zap.String("id", d.ID),
				zap.String("name", d.Name))
			out[i] = d
			replaced = append(replaced, d.ID)
			continue
		}
		pos[d.ID] = len(out)
		out = append(out, d)
	}

	return Result{Districts: out, Replaced: replaced}
}
