package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

// Writer is the render target and its configuration.
type Writer struct {
	io.Writer

	LogFile      string
	EnableColour bool
	Cleanup      func()
}

// NewFile creates a writer backed by the given file, or stdout when the
// path is empty.
func NewFile(logfile string, enableColour bool) *Writer {
	return &Writer{
		LogFile:      logfile,
		EnableColour: enableColour,
	}
}

// New creates a writer over an existing io.Writer.
func New(w io.Writer, enableColour bool) *Writer {
	return &Writer{
		Writer:       w,
		EnableColour: enableColour,
	}
}

// Create initialises the writer.
func (w *Writer) Create() error {
	color.NoColor = !w.EnableColour
	if w.Writer != nil {
		w.Cleanup = func() {}
		return nil
	}
	if w.LogFile != "" {
		f, err := os.Create(w.LogFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %s", err)
		}
		bufWriter := bufio.NewWriter(f)
		w.Writer = bufWriter
		w.Cleanup = func() {
			if err := bufWriter.Flush(); err != nil {
				log.Printf("flush: %s", err)
			}
			if err := f.Close(); err != nil {
				log.Printf("close: %s", err)
			}
		}
		return nil
	}
	w.Writer = os.Stdout
	w.Cleanup = func() {}
	return nil
}
