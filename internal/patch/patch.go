// Package patch computes averaged string positions and rewrites the
// UNSCALED_RELATIVE_X_POSITIONS const block inside a Rust source file.
package patch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	ErrLengthMismatch = errors.New("mismatched number of bounds collected")
	ErrBlockNotFound  = errors.New("UNSCALED_RELATIVE_X_POSITIONS block not found")
)

// blockPattern matches the const declaration and its array literal, which may
// span multiple lines. Only the first match is ever replaced.
var blockPattern = regexp.MustCompile(`(?ms)^const UNSCALED_RELATIVE_X_POSITIONS: &\[f32\] = &\[(.*?)\];`)

// Average pairs each left bound with its right bound and returns the
// midpoints. The sequences must be the same length.
func Average(left, right []float64) ([]float64, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: %d left, %d right", ErrLengthMismatch, len(left), len(right))
	}
	avg := make([]float64, len(left))
	for i := range left {
		avg[i] = (left[i] + right[i]) / 2
	}
	return avg, nil
}

// RenderBlock formats the averaged positions as the Rust const block. Values
// are printed in scientific notation with 17 fractional digits so that
// re-parsing them recovers the exact float64.
func RenderBlock(values []float64) string {
	var b strings.Builder
	b.WriteString("const UNSCALED_RELATIVE_X_POSITIONS: &[f32] = &[\n")
	for _, v := range values {
		fmt.Fprintf(&b, "    %.17e,\n", v)
	}
	b.WriteString("];")
	return b.String()
}

// Patcher rewrites the const block inside Target.
type Patcher struct {
	Target string
}

// Apply replaces the first matching const block in the target file with the
// rendered block and reports how many matches the file contained. The file is
// rewritten through a temp file and rename, so a failed write leaves the
// original untouched. When the pattern is missing the file is left as is and
// ErrBlockNotFound is returned.
func (p Patcher) Apply(block string) (int, error) {
	data, err := os.ReadFile(p.Target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("target file %s not found: %w", p.Target, err)
		}
		return 0, fmt.Errorf("read %s: %w", p.Target, err)
	}
	content := string(data)

	locs := blockPattern.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return 0, fmt.Errorf("%w in %s", ErrBlockNotFound, p.Target)
	}
	first := locs[0]
	updated := content[:first[0]] + block + content[first[1]:]

	if err := writeAtomic(p.Target, []byte(updated)); err != nil {
		return len(locs), fmt.Errorf("write %s: %w", p.Target, err)
	}
	return len(locs), nil
}

// writeAtomic writes data to a temp file in the target's directory and
// renames it over the target, preserving the original file mode.
func writeAtomic(target string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".stringcal-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
