package actionlog

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"runtime"
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// New returns a Handler writing to os.Stdout at LevelInfo, unless opts say
// otherwise.
func New(opts ...Option) *Handler {
	self := &Handler{
		metadata: Metadata{},
		minLevel: new(slog.LevelVar),
		mu:       new(sync.Mutex),
	}
	for _, fn := range opts {
		fn(self)
	}
	if self.sink == nil {
		self.sink = NewWriterSink(os.Stdout)
	}
	return self
}

// NewLogger returns a slog logger emitting workflow commands through a new
// Handler configured by opts.
func NewLogger(opts ...Option) *slog.Logger { return slog.New(New(opts...)) }

// An Option configures a Handler created by New.
type Option func(*Handler)

// WithWriter sends lines to w through a WriterSink.
func WithWriter(w io.Writer) Option {
	return func(h *Handler) { h.sink = NewWriterSink(w) }
}

// WithSink sends lines to sink.
func WithSink(sink LineSink) Option {
	return func(h *Handler) { h.sink = sink }
}

// WithLevel sets the severity threshold. Records below it never reach the
// sink.
func WithLevel(level slog.Level) Option {
	return func(h *Handler) { h.minLevel.Set(level) }
}

// WithMetadata seeds the persistent metadata with a copy of m.
func WithMetadata(m Metadata) Option {
	return func(h *Handler) { h.metadata = m.Clone() }
}

// Handler renders log records as workflow command lines the runner scans job
// output for, like "::error file=main.go,line=12::boom". It implements
// slog.Handler. Copies made by WithAttrs and WithGroup share the sink, the
// severity threshold and the write lock, while each copy owns its metadata,
// so handing a derived logger to a subsystem never changes what other
// loggers render.
type Handler struct {
	sink     LineSink
	metadata Metadata
	groups   []string

	minLevel *slog.LevelVar
	mu       *sync.Mutex
}

var _ slog.Handler = (*Handler)(nil)

func (self *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= self.minLevel.Level()
}

// SetMinLevel changes the severity threshold, shared with every copy of this
// handler.
func (self *Handler) SetMinLevel(level slog.Level) { self.minLevel.Set(level) }

func (self *Handler) MinLevel() slog.Level { return self.minLevel.Level() }

// Handle renders r as one command line and writes it to the sink. It never
// rejects a record: a foreign severity folds into the nearest command name,
// attr values stringify, and a record without a caller still renders, with
// an empty file and line zero.
func (self *Handler) Handle(_ context.Context, r slog.Record) error {
	cmd := command{
		name:   commandForLevel(r.Level),
		params: self.renderParams(&r),
		body:   r.Message,
	}
	return self.writeLine(cmd.render())
}

func (self *Handler) renderParams(r *slog.Record) []string {
	m := self.snapshotMetadata()
	if r.NumAttrs() > 0 {
		attrs := make([]slog.Attr, 0, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, a)
			return true
		})
		scratch := make(map[string]Value, len(attrs))
		mergeAttrs(scratch, attrs)
		if len(scratch) > 0 {
			maps.Copy(openGroups(m, self.groups), scratch)
		}
	}

	// The runner needs file and line to place the annotation. They always
	// come from the record itself and win over same named metadata.
	file, line := callSite(r.PC)
	m["file"] = StringValue(file)
	m["line"] = StringValue(strconv.Itoa(line))

	params := make([]string, 0, len(m))
	for k, v := range m {
		params = append(params, k+"="+v.String())
	}
	return params
}

// openGroups descends from m along the group path, copying every mapping on
// the way down so Values shared with other handler copies stay untouched,
// and returns the innermost mapping.
func openGroups(m Metadata, groups []string) map[string]Value {
	cur := map[string]Value(m)
	for _, g := range groups {
		d := make(map[string]Value, len(cur[g].dict)+1)
		maps.Copy(d, cur[g].dict)
		cur[g] = Value{dict: d}
		cur = d
	}
	return cur
}

// callSite resolves the file and line of the logging call. A record without
// a pc renders an empty file and line zero instead of failing.
func callSite(pc uintptr) (string, int) {
	if pc == 0 {
		return "", 0
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	return f.File, f.Line
}

func (self *Handler) snapshotMetadata() Metadata {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.metadata.Clone()
}

func (self *Handler) writeLine(line string) error {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.sink.WriteLine(line)
}

// AddMask tells the runner to redact value wherever it shows up in later
// output. Mask a secret before any line can contain it.
func (self *Handler) AddMask(value string) error {
	return self.writeLine(command{name: cmdAddMask, body: value}.render())
}

// SetEnv exports the environment variable name with value to the following
// steps of the job.
func (self *Handler) SetEnv(name, value string) error {
	cmd := command{
		name:   cmdSetEnv,
		params: []string{"name=" + name},
		body:   value,
	}
	return self.writeLine(cmd.render())
}

// SetOutput publishes value as the step output name.
func (self *Handler) SetOutput(name, value string) error {
	cmd := command{
		name:   cmdSetOutput,
		params: []string{"name=" + name},
		body:   value,
	}
	return self.writeLine(cmd.render())
}

// AddPath prepends dir to the PATH of the following steps.
func (self *Handler) AddPath(dir string) error {
	return self.writeLine(command{name: cmdAddPath, body: dir}.render())
}

// WithoutCommands runs fn with command processing suspended: a stop-commands
// line with a fresh token goes out before fn, the matching resume marker
// after it. The runner takes everything in between as plain text, so output
// fn does not control cannot smuggle commands into the job. The resume
// marker goes out even when fn fails or panics, so a scope never stays open.
// Returns the error of fn, or of the marker writes.
func (self *Handler) WithoutCommands(fn func() error) (err error) {
	token := uuid.NewString()
	err = self.writeLine(command{name: cmdStopCommands, body: token}.render())
	if err != nil {
		return err
	}
	defer func() {
		if rerr := self.writeLine(resumeMarker(token).render()); err == nil {
			err = rerr
		}
	}()
	return fn()
}

// SetMetadata stores v under key in the persistent metadata of this handler.
// Copies made before or after keep their own view.
func (self *Handler) SetMetadata(key string, v Value) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.metadata[key] = v
}

// DeleteMetadata removes key from the persistent metadata of this handler.
func (self *Handler) DeleteMetadata(key string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	delete(self.metadata, key)
}

// MetadataValue returns the persistent value stored under key.
func (self *Handler) MetadataValue(key string) (Value, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	v, ok := self.metadata[key]
	return v, ok
}

func (self *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	scratch := make(map[string]Value, len(attrs))
	mergeAttrs(scratch, attrs)
	if len(scratch) == 0 {
		return self
	}
	h := self.clone()
	maps.Copy(openGroups(h.metadata, h.groups), scratch)
	return h
}

func (self *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return self
	}
	h := self.clone()
	h.groups = append(h.groups, name)
	return h
}

func (self *Handler) clone() *Handler {
	h := *self
	h.metadata = self.snapshotMetadata()
	h.groups = slices.Clone(self.groups)
	return &h
}
