package compliance

import (
	"strings"
	"testing"
)

func TestRunKnownAnswerTestsAllPass(t *testing.T) {
	report := RunKnownAnswerTests()
	if !report.Passed() {
		for _, res := range report.Results {
			if !res.Passed {
				t.Errorf("%s: got %s, want %s", res.ID, res.Got, res.Expected)
			}
		}
	}
}

func TestFormatIncludesSummaryLine(t *testing.T) {
	report := RunKnownAnswerTests()
	out := Format(report)
	if !strings.Contains(out, "passed") || !strings.Contains(out, "failed") {
		t.Fatalf("Format output missing summary: %q", out)
	}
}

func TestMonobitRatioOfAlternatingBytes(t *testing.T) {
	data := []byte{0xaa, 0x55, 0xaa, 0x55}
	ratio := MonobitRatio(data)
	if ratio != 0.5 {
		t.Fatalf("MonobitRatio(alternating) = %f, want 0.5", ratio)
	}
}

func TestMonobitRatioOfZeros(t *testing.T) {
	data := make([]byte, 16)
	if MonobitRatio(data) != 0 {
		t.Fatalf("MonobitRatio(zeros) = %f, want 0", MonobitRatio(data))
	}
}

func TestMonobitRatioEmpty(t *testing.T) {
	if MonobitRatio(nil) != 0 {
		t.Fatal("MonobitRatio(nil) should be 0")
	}
}
