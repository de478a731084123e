package actionlog

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// A LineSink receives finished protocol lines. WriteLine appends line, which
// never contains a newline, as one new line of the destination. A sink is not
// expected to retry or buffer; errors come back to the caller unchanged.
type LineSink interface {
	WriteLine(line string) error
}

// WriterSink writes lines to an io.Writer, one Write call per line with the
// newline included, so a line stays whole even on a fd shared with other
// writers.
type WriterSink struct {
	w io.Writer
}

var _ LineSink = (*WriterSink)(nil)

func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

func (self *WriterSink) WriteLine(line string) error {
	if _, err := io.WriteString(self.w, line+"\n"); err != nil {
		return fmt.Errorf("write command line: %w", err)
	}
	return nil
}

// MemorySink collects lines in memory, for tests and for callers that want
// to inspect what would reach the runner.
type MemorySink struct {
	mu    sync.Mutex
	lines []string
}

var _ LineSink = (*MemorySink)(nil)

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (self *MemorySink) WriteLine(line string) error {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.lines = append(self.lines, line)
	return nil
}

// Lines returns a copy of everything written so far, in order.
func (self *MemorySink) Lines() []string {
	self.mu.Lock()
	defer self.mu.Unlock()
	lines := make([]string, len(self.lines))
	copy(lines, self.lines)
	return lines
}

// String returns the collected lines as the runner would see them, each
// terminated with a newline.
func (self *MemorySink) String() string {
	lines := self.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (self *MemorySink) Reset() {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.lines = nil
}
