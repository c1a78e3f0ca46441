package groq

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

var (
	dataPrefix = []byte("data:")
	doneMarker = []byte("[DONE]")
)

// Stream passes the event stream through unchanged while collecting the streamed text.
type Stream struct {
	body    io.ReadCloser
	pending []byte
	text    strings.Builder
}

func NewStream(body io.ReadCloser) *Stream {
	return &Stream{body: body}
}

type chunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.body.Read(p)
	if n > 0 {
		s.consume(p[:n])
	}

	if err == io.EOF && len(s.pending) > 0 {
		s.line(s.pending)
		s.pending = nil
	}

	return n, err
}

func (s *Stream) Close() error {
	return s.body.Close()
}

// Text is the content received so far.
func (s *Stream) Text() string {
	return s.text.String()
}

func (s *Stream) consume(b []byte) {
	s.pending = append(s.pending, b...)

	for {
		i := bytes.IndexByte(s.pending, '\n')
		if i < 0 {
			return
		}

		s.line(s.pending[:i])
		s.pending = s.pending[i+1:]
	}
}

func (s *Stream) line(l []byte) {
	l = bytes.TrimSpace(l)
	if !bytes.HasPrefix(l, dataPrefix) {
		return
	}

	payload := bytes.TrimSpace(l[len(dataPrefix):])
	if len(payload) == 0 || bytes.Equal(payload, doneMarker) {
		return
	}

	var c chunk

	// Partial or foreign events are passed through without contributing text.
	if json.Unmarshal(payload, &c) != nil {
		return
	}

	for _, ch := range c.Choices {
		s.text.WriteString(ch.Delta.Content)
	}
}
