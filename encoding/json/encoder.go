package json

import "io"

// Encoder writes new line delimited JSON
type Encoder struct {
	writer io.Writer
	opts   []Option
	buffer []byte
}

// Encode writes value followed by new line
func (e *Encoder) Encode(v interface{}) error {
	var err error
	if e.buffer, err = Append(e.buffer[:0], v, e.opts...); err != nil {
		return err
	}
	e.buffer = append(e.buffer, '\n')
	_, err = e.writer.Write(e.buffer)
	return err
}

// NewEncoder creates new line delimited JSON encoder
func NewEncoder(writer io.Writer, opts ...Option) *Encoder {
	return &Encoder{writer: writer, opts: opts}
}
