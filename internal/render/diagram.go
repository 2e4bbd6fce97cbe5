package render

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Result is the outcome of one diagram compile. Exactly one of HTML or Err is
// set; consumers branch on OK instead of recovering from panics.
type Result struct {
	OK   bool
	HTML string
	Err  string
}

// Compiler turns mermaid source into a self-contained HTML fragment.
type Compiler interface {
	Compile(ctx context.Context, source string) (string, error)
}

// MermaidCompiler sanitizes the source and emits a responsive mermaid block
// that the page's mermaid.js loader renders client-side.
type MermaidCompiler struct{}

func (MermaidCompiler) Compile(_ context.Context, source string) (string, error) {
	clean := Sanitize(source)
	if strings.TrimSpace(clean) == "" {
		return "", fmt.Errorf("empty diagram source")
	}
	return fmt.Sprintf(
		`<div class="mermaid" style="max-width:100%%;height:auto">%s</div>`,
		escapeHTML(clean),
	), nil
}

// DefaultDebounce is how long a diagram waits for further source updates
// before compiling.
const DefaultDebounce = 200 * time.Millisecond

// Diagram compiles one diagram block out-of-band. Source updates are
// debounced, at most one compile runs at a time, and an update arriving while
// a compile is in flight is skipped rather than queued. After Close no result
// is ever delivered.
type Diagram struct {
	ID       string
	compiler Compiler
	debounce *debouncer
	onResult func(Result)

	mu       sync.Mutex
	inflight bool
	closed   bool
}

// NewDiagram creates a block renderer that reports compile outcomes through
// onResult. onResult is called from a background goroutine.
func NewDiagram(id string, compiler Compiler, delay time.Duration, onResult func(Result)) *Diagram {
	return &Diagram{
		ID:       id,
		compiler: compiler,
		debounce: newDebouncer(delay),
		onResult: onResult,
	}
}

// Update schedules a compile of the given source. Rapid successive updates
// collapse into one compile pass.
func (d *Diagram) Update(source string) {
	d.debounce.debounce(func() {
		d.mu.Lock()
		if d.closed || d.inflight {
			d.mu.Unlock()
			return
		}
		d.inflight = true
		d.mu.Unlock()

		go d.compile(source)
	})
}

func (d *Diagram) compile(source string) {
	html, err := d.compiler.Compile(context.Background(), source)

	d.mu.Lock()
	d.inflight = false
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	if err != nil {
		d.onResult(Result{Err: err.Error()})
		return
	}
	d.onResult(Result{OK: true, HTML: html})
}

// Close drops any pending compile and suppresses results from one already
// running. Safe to call more than once.
func (d *Diagram) Close() {
	d.debounce.cancel()
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}
