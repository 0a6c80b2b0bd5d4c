// Package render formats simulation events for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Separator closes every tick in the narration.
var Separator = strings.Repeat("-", 43)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

// TextRenderer narrates a run line by line.
type TextRenderer struct {
	w     io.Writer
	color bool
}

// NewTextRenderer creates a narrator writing to w, with ANSI colour if color is set.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	return &TextRenderer{w: w, color: color}
}

// Banner prints the opening header of a run.
func (r *TextRenderer) Banner() {
	title := "Streaming simulation with sliding window"
	if r.color {
		title = bannerStyle.Render(title)
	}
	_, _ = fmt.Fprintf(r.w, "%s\n%s\n%s\n\n", Separator, title, Separator)
}

// OnEvent prints the narration line for e.
func (r *TextRenderer) OnEvent(e types.Event) {
	_, _ = fmt.Fprintln(r.w, r.paint(e.Kind, Line(e)))
}

// OnFinish prints the run summary.
func (r *TextRenderer) OnFinish(res types.Result) {
	if res.Interrupted {
		_, _ = fmt.Fprintf(r.w, "\nStreaming interrupted.\n")
	} else {
		_, _ = fmt.Fprintf(r.w, "\nStreaming finished.\n")
	}
	_, _ = fmt.Fprintf(r.w, "Chunks played: %d of %d\n", res.PlayedCount, res.TotalChunks)
	_, _ = fmt.Fprintf(r.w, "Final buffer state: %d/%d\n", res.FinalBufferSize, res.WindowSize)

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Ticks", "Played", "Dropped", "Disconnects", "Pauses"})
	t.AppendRow(table.Row{
		res.Ticks,
		fmt.Sprintf("%d/%d", res.PlayedCount, res.TotalChunks),
		res.Dropped,
		res.Disconnects,
		res.Pauses,
	})
	t.Render()

	_, _ = fmt.Fprintln(r.w, Separator)
}

// Line returns the plain narration text for e.
func Line(e types.Event) string {
	switch e.Kind {
	case types.EventConnectionLost:
		if e.Dropped > 0 {
			return fmt.Sprintf("[NET] Connection lost. Video frozen, %d buffered chunks discarded.", e.Dropped)
		}
		return "[NET] Connection lost. Video frozen."
	case types.EventConnectionRestored:
		return "[NET] Connection restored. Loading data..."
	case types.EventWaitingReconnect:
		return fmt.Sprintf("[NET] No connection (%d ticks remaining)...", e.TicksRemaining)
	case types.EventChunkReceived:
		return fmt.Sprintf("[NET] Chunk %d received. Buffer: %d/%d", e.Chunk, e.Buffered, e.Capacity)
	case types.EventPlaybackResumed:
		return fmt.Sprintf("[PLAYER] Buffer sufficient (%d). Resuming playback.", e.Buffered)
	case types.EventChunkPlayed:
		return fmt.Sprintf("[PLAYER] Playing chunk %d | Buffer remaining: %d", e.Chunk, e.Buffered)
	case types.EventPlaybackPaused:
		return fmt.Sprintf("[PLAYER] Buffer low (%d/%d). Pausing playback...", e.Buffered, e.Threshold)
	case types.EventTickEnd:
		return Separator
	default:
		return fmt.Sprintf("[?] %s", e.Kind)
	}
}

func (r *TextRenderer) paint(kind types.EventKind, line string) string {
	if !r.color {
		return line
	}

	switch kind {
	case types.EventConnectionLost, types.EventPlaybackPaused:
		return text.FgHiRed.Sprint(line)
	case types.EventWaitingReconnect:
		return text.FgYellow.Sprint(line)
	case types.EventConnectionRestored, types.EventPlaybackResumed:
		return text.FgGreen.Sprint(line)
	case types.EventTickEnd:
		return text.FgHiBlack.Sprint(line)
	default:
		return line
	}
}
