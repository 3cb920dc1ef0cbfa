package spec

import (
	"regexp"
	"strings"
)

// Patterns matched against the function line of each stack frame. Frames
// belonging to the harness dispatch machinery and to the runtime's panic
// plumbing are removed so the printed trace starts at the spec author's code.
var hiddenFramePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^github\.com/zurustar/ebispec/pkg/spec\.`),
	regexp.MustCompile(`^runtime/debug\.Stack`),
	regexp.MustCompile(`^runtime\.`),
	regexp.MustCompile(`^panic\(`),
}

// FilterTrace removes harness and runtime frames from a debug.Stack capture.
// Input that does not look like a goroutine stack is returned unchanged
// rather than discarded.
func FilterTrace(stack []byte) string {
	text := strings.TrimRight(string(stack), "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "goroutine ") {
		return text
	}

	out := []string{lines[0]}
	i := 1
	for i < len(lines) {
		funcLine := lines[i]
		if strings.HasPrefix(funcLine, "\t") {
			// A location line with no preceding function line; the capture
			// does not have the shape we expect, so keep everything as-is.
			return text
		}

		// A frame is a function line optionally followed by one location line.
		frame := []string{funcLine}
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "\t") {
			frame = append(frame, lines[i+1])
		}
		i += len(frame)

		if !hiddenFrame(funcLine) {
			out = append(out, frame...)
		}
	}

	return strings.Join(out, "\n")
}

func hiddenFrame(funcLine string) bool {
	for _, re := range hiddenFramePatterns {
		if re.MatchString(funcLine) {
			return true
		}
	}
	return false
}
