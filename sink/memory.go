package sink

import "context"

// Memory records every line it receives. Used by the scenario runner to
// capture per-step output and by tests to assert exact transcripts.
type Memory struct {
	lines []string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) WriteLine(_ context.Context, line string) error {
	m.lines = append(m.lines, line)
	return nil
}

// Len reports how many lines have been recorded so far.
func (m *Memory) Len() int {
	return len(m.lines)
}

// Lines returns a copy of everything recorded so far.
func (m *Memory) Lines() []string {
	return append([]string(nil), m.lines...)
}

func (m *Memory) Reset() {
	m.lines = nil
}
