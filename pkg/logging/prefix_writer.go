package logging

import (
	"bytes"
	"io"
	"sync"
)

// PrefixWriter writes every complete line to the underlying writer with a
// fixed prefix. A trailing partial line is held back until its newline
// arrives or Flush is called.
type PrefixWriter struct {
	mu      sync.Mutex
	prefix  []byte
	writer  io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	pw.pending.Write(p)
	for {
		i := bytes.IndexByte(pw.pending.Bytes(), '\n')
		if i < 0 {
			break
		}
		if err := pw.emit(pw.pending.Next(i + 1)); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Flush writes out any buffered partial line. Loggers from NewLogger never
// need it: hclog ends every entry with a newline. It is for callers that
// wrap writers producing unterminated output.
func (pw *PrefixWriter) Flush() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.pending.Len() == 0 {
		return nil
	}
	return pw.emit(pw.pending.Next(pw.pending.Len()))
}

func (pw *PrefixWriter) emit(line []byte) error {
	out := make([]byte, 0, len(pw.prefix)+len(line))
	out = append(out, pw.prefix...)
	out = append(out, line...)
	_, err := pw.writer.Write(out)
	return err
}
