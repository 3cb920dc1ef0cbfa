package spec

import (
	"bytes"
	"strings"
	"testing"
)

func TestReporterMarks(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.Begin()
	r.Pass()
	r.Pass()
	r.Fail()
	r.Pass()

	if got := buf.String(); got != "\n..F." {
		t.Errorf("marks = %q, want %q", got, "\n..F.")
	}
}

func TestReporterSummaryStyles(t *testing.T) {
	tests := []struct {
		name string
		sum  Summary
		want string
	}{
		{"success", Summary{Passes: 5}, "5 examples, 0 failures"},
		{"failure", Summary{Passes: 3, Failures: 2}, "5 examples, 2 failures"},
		{"empty", Summary{}, "0 examples, 0 failures"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewReporter(&buf, false)
			r.Summary(tt.sum)

			want := "\n\n" + tt.want + "\n"
			if got := buf.String(); got != want {
				t.Errorf("summary output = %q, want %q", got, want)
			}
		})
	}
}

func TestReporterFailurePrintsReasonAndTrace(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	stack := "goroutine 1 [running]:\nmain.badSpec(0x0)\n\t/work/main.go:10 +0x20\n"
	r.Failure(failure{msg: "assertion failed: |1 - 2| <= 0.5"}, []byte(stack))

	out := buf.String()
	if !strings.Contains(out, "assertion failed: |1 - 2| <= 0.5") {
		t.Errorf("output missing failure reason: %q", out)
	}
	if !strings.Contains(out, "main.badSpec") {
		t.Errorf("output missing trace frame: %q", out)
	}
}

func TestSummaryTotal(t *testing.T) {
	sum := Summary{Passes: 3, Failures: 2}
	if sum.Total() != 5 {
		t.Errorf("Total() = %d, want 5", sum.Total())
	}
}
