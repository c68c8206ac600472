// Package progress renders the terminal progress bar shown while objects
// are uploading.
package progress

import (
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// Bar wraps the underlying progress bar.
type Bar struct {
	*pb.ProgressBar
}

// NewBar instantiates and starts a progress bar for total units of work.
func NewBar(total int64) *Bar {
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{counters . }} {{bar . }} {{percent . }} {{speed . }}`)
	bar.Start()

	return &Bar{ProgressBar: bar}
}

// SetCaption sets the caption shown ahead of the bar.
func (b *Bar) SetCaption(caption string) *Bar {
	b.ProgressBar.Set("prefix", caption)
	return b
}
