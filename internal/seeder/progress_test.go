package seeder

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestProgressWritesOneLinePerStep(t *testing.T) {
	var buf bytes.Buffer
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	p := NewProgress(&buf, 2, func() time.Time { return clock })

	p.Step()
	p.Step()
	clock = start.Add(1500 * time.Millisecond)
	elapsed := p.Done()

	if elapsed != 1500*time.Millisecond {
		t.Errorf("Done() = %v", elapsed)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "1/2") || !strings.HasSuffix(lines[1], "2/2") {
		t.Errorf("unexpected progress lines %q", lines[:2])
	}
	if !strings.Contains(lines[2], "1.5s") {
		t.Errorf("final line %q does not report elapsed time", lines[2])
	}
	if strings.Contains(buf.String(), "\r") {
		t.Error("carriage return written to a non-terminal")
	}
}

func TestProgressSpinnerAdvances(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3, time.Now)
	p.Step()
	p.Step()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], spinner[0]) || !strings.Contains(lines[1], spinner[1]) {
		t.Errorf("spinner did not advance: %q", lines)
	}
}
