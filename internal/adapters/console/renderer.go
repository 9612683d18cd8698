package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

// Renderer pinta el countdown en una sola línea (\r) cuando la salida es una terminal.
// Si no lo es (docker logs, archivos) escribe una línea por minuto para no inundar el log.
type Renderer struct {
	mu         sync.Mutex
	w          io.Writer
	tty        bool
	lastMinute int64
}

func New(w io.Writer) *Renderer {
	tty := false
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		tty = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return NewWithTTY(w, tty)
}

func NewWithTTY(w io.Writer, tty bool) *Renderer {
	return &Renderer{w: w, tty: tty, lastMinute: -1}
}

// Render es un service.RenderFunc.
func (r *Renderer) Render(remaining time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	text := domain.FormatRemaining(remaining)
	if r.tty {
		// espacios al final para pisar restos de una línea más larga
		fmt.Fprintf(r.w, "\r⏰ Next nickname change in: %s   ", text)
		return
	}

	minute := int64(remaining / time.Minute)
	if remaining < 0 {
		minute = 0
	}
	if minute == r.lastMinute {
		return
	}
	r.lastMinute = minute
	fmt.Fprintf(r.w, "⏰ Next nickname change in: %s\n", text)
}
