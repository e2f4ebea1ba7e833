// Package stream provides io.Writer and io.Reader adapters that pass text
// through a cipher machine on its way to or from an underlying stream.
//
// The adapters sit at the boundary, so they apply the boundary policy the
// core leaves to callers: whitespace (space, tab, CR, LF) is dropped before
// enciphering, the way operators stripped spacing from real traffic. Any
// other character outside A-Z still fails with the core's rejection error.
//
// Because the machine transform is reciprocal, the same adapter type
// enciphers and deciphers; a Reader over ciphertext yields plaintext when
// its machine starts from the sender's settings.
//
// An adapter drives its machine's rotor state and therefore inherits the
// machine's concurrency contract: one goroutine at a time.
package stream

import (
	"bufio"
	"io"

	enigma "github.com/smnsjas/go-enigma"
)

// Writer enciphers everything written to it and forwards the result to the
// underlying writer.
type Writer struct {
	machine *enigma.Machine
	sink    io.Writer
}

// NewWriter returns a Writer that transforms through machine before
// writing to sink.
func NewWriter(machine *enigma.Machine, sink io.Writer) *Writer {
	return &Writer{machine: machine, sink: sink}
}

// Write enciphers p, minus whitespace, and writes the result to the sink.
// On success n is len(p), including the dropped whitespace. A rejected
// character fails the whole write with nothing consumed or emitted; the
// machine validates before stepping, so its state is unchanged.
func (w *Writer) Write(p []byte) (int, error) {
	out, err := w.machine.Encode(stripSpace(string(p)))
	if err != nil {
		return 0, err
	}
	if _, err := io.WriteString(w.sink, out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Reader deciphers everything read from the underlying reader.
type Reader struct {
	machine *enigma.Machine
	src     *bufio.Reader
	pending []byte
}

// NewReader returns a Reader that transforms text from src through machine
// as it is read.
func NewReader(machine *enigma.Machine, src io.Reader) *Reader {
	return &Reader{machine: machine, src: bufio.NewReader(src)}
}

// Read fills p with transformed output. Whitespace in the source is
// dropped, so fewer bytes may come out than went in.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		chunk := make([]byte, 256)
		n, err := r.src.Read(chunk)
		if n > 0 {
			out, encErr := r.machine.Encode(stripSpace(string(chunk[:n])))
			if encErr != nil {
				return 0, encErr
			}
			r.pending = []byte(out)
		}
		if err != nil {
			if len(r.pending) > 0 {
				break
			}
			return 0, err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// stripSpace drops the whitespace the adapters tolerate.
func stripSpace(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
