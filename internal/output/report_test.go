package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/flowlabel/internal/label"
)

func TestBuildReport_FailsOnInvalidNode(t *testing.T) {
	_, err := BuildReport("", []*label.Node{{Name: "A", Value: 1}, {Name: "", Value: 2}}, nil)
	if !errors.Is(err, label.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGenerateReport_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateReport(&buf, buildTestReport(t), "plain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Salary\n$95k") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	err := GenerateReport(&bytes.Buffer{}, &Report{}, "definitely-not-a-format")
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}

func TestWriteFormatted_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	got, err := WriteFormatted(CSVSummarizer{}, buildTestReport(t), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Fatalf("WriteFormatted returned %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "Name,Value,Formatted") {
		t.Fatalf("unexpected file content: %s", data)
	}
}

func TestWriteFormatted_TimestampedName(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := WriteFormatted(TextFormatter{}, buildTestReport(t), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "node_labels_") || !strings.HasSuffix(got, ".txt") {
		t.Fatalf("unexpected file name %q", got)
	}
}
