package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderUniformReport(t *testing.T) {
	rep, err := Analyze([]int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, rep, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"=== DICE ROLL DISTRIBUTION ANALYSIS ===",
		"Total rolls: 6",
		"Face Count Percentage Expected Deviation",
		"Chi-square statistic: 0.000",
		"Critical value (5% significance, 5 df): 11.070",
		"Distribution appears fair (fails to reject null hypothesis)",
		"Mean: 3.500 (expected: 3.500)",
		"Median: 3.5 (expected: 3.5)",
		"Min: 1, Max: 6",
		"1-2 (low): 2 rolls (33.3%)",
		"3-4 (mid): 2 rolls (33.3%)",
		"5-6 (high): 2 rolls (33.3%)",
		"Maximum consecutive same number: 1",
		"Streaks of repeated numbers: 0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderUnfairVerdict(t *testing.T) {
	rep, err := Analyze([]int{1, 1, 1, 1, 1, 1})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, rep, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Chi-square statistic: 30.000") {
		t.Fatalf("report missing chi-square statistic:\n%s", out)
	}
	if !strings.Contains(out, "Distribution may not be fair (rejects null hypothesis)") {
		t.Fatalf("report missing verdict:\n%s", out)
	}
	if !strings.Contains(out, "Maximum consecutive same number: 6") {
		t.Fatalf("report missing pattern analysis:\n%s", out)
	}
	if strings.Contains(out, "appears fair") {
		t.Fatalf("report must not carry both verdicts:\n%s", out)
	}
}

func TestRenderPlainOutputHasNoEscapes(t *testing.T) {
	rep, err := Analyze([]int{2, 2, 4, 6})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, rep, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("plain output contains ANSI escapes:\n%q", buf.String())
	}
}
