package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Bar is a single-line progress bar on stderr. It disables itself when
// stderr is not a terminal, so piped and redirected runs stay clean.
type Bar struct {
	total      int64
	current    int64
	width      int
	writer     io.Writer
	mu         sync.Mutex
	lastPath   string
	enabled    bool
	lastUpdate time.Time
}

func New(total int64) *Bar {
	return &Bar{
		total:      total,
		width:      40,
		writer:     os.Stderr,
		enabled:    isatty.IsTerminal(os.Stderr.Fd()),
		lastUpdate: time.Now(),
	}
}

// Step records one finished file and redraws the bar, throttled to avoid
// flickering on fast scans.
func (b *Bar) Step(path string) {
	if !b.enabled {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.current++
	b.lastPath = filepath.Base(path)

	now := time.Now()
	if now.Sub(b.lastUpdate) > 100*time.Millisecond || b.current == b.total {
		b.lastUpdate = now
		b.render()
	}
}

// render must be called with mu already locked
func (b *Bar) render() {
	if b.total == 0 {
		return
	}

	filled := int(float64(b.width) * float64(b.current) / float64(b.total))
	if filled > b.width {
		filled = b.width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", b.width-filled)
	percent := float64(b.current) / float64(b.total) * 100

	fmt.Fprintf(b.writer, "\r\033[K[%s] %3.0f%% (%d/%d) %s",
		bar, percent, b.current, b.total, b.lastPath)
}

// Finish clears the status line so real output starts on a clean row.
func (b *Bar) Finish() {
	if !b.enabled {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	fmt.Fprint(b.writer, "\r\033[2K")
}
