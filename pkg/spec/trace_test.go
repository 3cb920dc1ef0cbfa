package spec_test

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/zurustar/ebispec/pkg/spec"
)

func TestFilterTraceRemovesHarnessFrames(t *testing.T) {
	stack := strings.Join([]string{
		"goroutine 7 [running]:",
		"runtime/debug.Stack()",
		"\t/usr/local/go/src/runtime/debug/stack.go:26 +0x5e",
		"github.com/zurustar/ebispec/pkg/spec.(*Scheduler).invoke.func1()",
		"\t/work/pkg/spec/scheduler.go:130 +0x80",
		"panic({0x52b4a0?, 0x5e2cd0?})",
		"\t/usr/local/go/src/runtime/panic.go:792 +0x132",
		"github.com/zurustar/ebispec/pkg/spec.(*T).Failf(...)",
		"\t/work/pkg/spec/context.go:58",
		"main.brokenSpec(0xc0000a2000)",
		"\t/work/cmd/demo/main.go:21 +0x45",
		"github.com/zurustar/ebispec/pkg/spec.(*Scheduler).invoke(0xc000010090, 0x5e3f20)",
		"\t/work/pkg/spec/scheduler.go:140 +0x6a",
		"github.com/zurustar/ebispec/pkg/spec.(*Scheduler).Advance(0xc000010090)",
		"\t/work/pkg/spec/scheduler.go:95 +0xd1",
	}, "\n") + "\n"

	got := spec.FilterTrace([]byte(stack))

	if !strings.HasPrefix(got, "goroutine 7 [running]:") {
		t.Errorf("goroutine header dropped: %q", got)
	}
	if !strings.Contains(got, "main.brokenSpec") {
		t.Errorf("spec author frame dropped: %q", got)
	}
	for _, hidden := range []string{
		"runtime/debug.Stack",
		"panic(",
		"(*Scheduler).invoke",
		"(*Scheduler).Advance",
		"(*T).Failf",
	} {
		if strings.Contains(got, hidden) {
			t.Errorf("harness frame %q survived filtering:\n%s", hidden, got)
		}
	}
}

func TestFilterTracePassesThroughUnrecognizedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not a stack", "something went wrong"},
		{"orphan location line", "goroutine 1 [running]:\n\t/some/file.go:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spec.FilterTrace([]byte(tt.input))
			want := strings.TrimRight(tt.input, "\n")
			if got != want {
				t.Errorf("FilterTrace(%q) = %q, want unfiltered %q", tt.input, got, want)
			}
		})
	}
}

func TestFilterTraceOnRealCapture(t *testing.T) {
	var captured []byte
	func() {
		defer func() {
			recover()
			captured = debug.Stack()
		}()
		panic("for capture")
	}()

	got := spec.FilterTrace(captured)
	if !strings.Contains(got, "TestFilterTraceOnRealCapture") {
		t.Errorf("caller frame missing from filtered trace:\n%s", got)
	}
	if strings.Contains(got, "runtime/debug.Stack") {
		t.Errorf("capture frame survived filtering:\n%s", got)
	}
}
