package patch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestAverage(t *testing.T) {
	left := []float64{0.1, 0.5}
	right := []float64{0.7, 0.3}

	avg, err := Average(left, right)
	if err != nil {
		t.Fatalf("Average returned error: %v", err)
	}
	if len(avg) != 2 {
		t.Fatalf("expected 2 averaged values, got %d", len(avg))
	}
	if avg[0] != (0.1+0.7)/2 || avg[1] != (0.5+0.3)/2 {
		t.Fatalf("unexpected averages: %v", avg)
	}
}

func TestAverageLengthMismatch(t *testing.T) {
	_, err := Average([]float64{0.1, 0.5}, []float64{0.3})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestRenderBlockFormat(t *testing.T) {
	got := RenderBlock([]float64{0.4, 0.4})
	want := "const UNSCALED_RELATIVE_X_POSITIONS: &[f32] = &[\n" +
		"    4.00000000000000022e-01,\n" +
		"    4.00000000000000022e-01,\n" +
		"];"
	if got != want {
		t.Fatalf("unexpected block:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderedValuesRoundTrip(t *testing.T) {
	values := []float64{0.0, 0.123456789, 1.0 / 3.0, 0.9999999999999999}
	for _, v := range values {
		s := fmt.Sprintf("%.17e", v)
		back, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if back != v {
			t.Fatalf("round trip lost precision: %v -> %q -> %v", v, s, back)
		}
	}
}

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.rs")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestApplyReplacesBlock(t *testing.T) {
	original := "use std::io;\n\n" +
		"const UNSCALED_RELATIVE_X_POSITIONS: &[f32] = &[\n" +
		"    1.00000000000000000e-01,\n" +
		"    2.00000000000000000e-01,\n" +
		"];\n\n" +
		"fn main() {}\n"
	path := writeTarget(t, original)

	block := RenderBlock([]float64{0.4, 0.4})
	matches, err := Patcher{Target: path}.Apply(block)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if matches != 1 {
		t.Fatalf("expected 1 match, got %d", matches)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "use std::io;\n\n" + block + "\n\nfn main() {}\n"
	if string(data) != want {
		t.Fatalf("unexpected file content:\n%s\nwant:\n%s", data, want)
	}
}

func TestApplyReplacesSingleLineBlock(t *testing.T) {
	path := writeTarget(t, "const UNSCALED_RELATIVE_X_POSITIONS: &[f32] = &[0.1, 0.2];\nfn main() {}\n")

	block := RenderBlock([]float64{0.5})
	if _, err := (Patcher{Target: path}).Apply(block); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), block) {
		t.Fatalf("single-line block not replaced:\n%s", data)
	}
	if !strings.HasSuffix(string(data), "fn main() {}\n") {
		t.Fatalf("surrounding content lost:\n%s", data)
	}
}

func TestApplyReplacesOnlyFirstMatch(t *testing.T) {
	original := "const UNSCALED_RELATIVE_X_POSITIONS: &[f32] = &[0.1];\n" +
		"const UNSCALED_RELATIVE_X_POSITIONS: &[f32] = &[0.2];\n"
	path := writeTarget(t, original)

	block := RenderBlock([]float64{0.9})
	matches, err := Patcher{Target: path}.Apply(block)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if matches != 2 {
		t.Fatalf("expected 2 matches reported, got %d", matches)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "&[0.2];") {
		t.Fatalf("second block should be untouched:\n%s", data)
	}
	if strings.Contains(string(data), "&[0.1];") {
		t.Fatalf("first block should be replaced:\n%s", data)
	}
}

func TestApplyBlockNotFoundLeavesFileUntouched(t *testing.T) {
	original := "fn main() { println!(\"no const here\"); }\n"
	path := writeTarget(t, original)

	_, err := Patcher{Target: path}.Apply(RenderBlock([]float64{0.5}))
	if !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("expected ErrBlockNotFound, got %v", err)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read back: %v", readErr)
	}
	if string(data) != original {
		t.Fatalf("file modified despite missing block:\n%s", data)
	}
}

func TestApplyMissingTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "main.rs")

	_, err := Patcher{Target: path}.Apply(RenderBlock([]float64{0.5}))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-found error, got %v", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("no file should have been created, stat: %v", statErr)
	}
}
