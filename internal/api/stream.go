package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/docchat/docchat/models"
)

// StreamState indicates where a [ChatStream] is in its lifecycle.
type StreamState int

const (
	// StateReading means the stream is actively pulling chunks from the
	// response body.
	StateReading StreamState = iota
	// StateDraining means the body reported end of data and any buffered
	// partial line is being processed as a final complete line.
	StateDraining
	// StateDone is terminal: the sentinel was decoded, the body ended, a
	// read failed, or the caller closed the stream. No further fragments
	// are produced and the body has been released.
	StateDone
)

var dataPrefix = []byte(models.StreamDataPrefix)

// ChatStream decodes the event-stream body of a streaming chat response into
// an ordered, lazy sequence of text fragments.
//
// The decoder is pull-based and single-consumer: nothing is read from the
// body until Next is called, and no two Next calls may run concurrently.
// Chunk boundaries carry no meaning; bytes are buffered until a complete
// line (or the end of the body) is available, so fragments and multi-byte
// characters split across chunks decode identically to a single-chunk
// delivery. Lines whose payload cannot be decoded are skipped; they never
// fail the stream.
//
// The body is closed exactly once on every exit path: sentinel, natural end,
// read failure, or an early Close by the caller.
type ChatStream struct {
	body   io.ReadCloser
	state  StreamState
	closed bool

	readBuf []byte
	buf     []byte   // bytes of the trailing, still incomplete line
	pending []string // fragments decoded but not yet handed out
	err     error    // sticky transport failure, reported by Next

	// OnDecodeError, when set, is invoked for every line that fails JSON
	// decoding before the line is skipped. Purely diagnostic; it cannot
	// alter the fragment sequence.
	OnDecodeError func(line string, err error)
}

// NewChatStream wraps the raw response body of a streaming chat request.
// The ChatStream takes ownership of body.
func NewChatStream(body io.ReadCloser) *ChatStream {
	return &ChatStream{
		body:    body,
		state:   StateReading,
		readBuf: make([]byte, 4096),
	}
}

// Next returns the next text fragment. It blocks while awaiting data from
// the body, returns io.EOF once the sequence has ended, and returns an
// *[APIError] if the underlying read fails; after an error no further
// fragments are produced.
func (s *ChatStream) Next() (string, error) {
	for {
		if len(s.pending) > 0 {
			fragment := s.pending[0]
			s.pending = s.pending[1:]
			return fragment, nil
		}

		switch s.state {
		case StateDone:
			if s.err != nil {
				return "", s.err
			}
			return "", io.EOF

		case StateReading:
			n, err := s.body.Read(s.readBuf)
			if n > 0 {
				s.ingest(s.readBuf[:n])
			}
			if s.state == StateDone {
				// sentinel decoded; stop consuming even though the
				// body may still have data
				_ = s.release()
				continue
			}
			if err == io.EOF {
				s.state = StateDraining
				continue
			}
			if err != nil {
				s.err = newTransportError(fmt.Errorf("read stream: %w", err))
				s.state = StateDone
				_ = s.release()
				continue
			}

		case StateDraining:
			// the trailing partial line counts as complete now
			if len(s.buf) > 0 {
				s.decodeLine(s.buf)
				s.buf = nil
			}
			s.state = StateDone
			_ = s.release()
		}
	}
}

// State returns the current lifecycle state of the stream.
func (s *ChatStream) State() StreamState {
	return s.state
}

// Close releases the underlying body. It is safe to call at any point and
// any number of times; a stream abandoned mid-iteration must be closed so
// the connection is returned.
func (s *ChatStream) Close() error {
	s.state = StateDone
	return s.release()
}

// release closes the body exactly once across all exit paths.
func (s *ChatStream) release() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.body.Close()
}

// ingest appends a raw chunk to the line buffer and decodes every complete
// line it now holds, stopping early if a line turns out to be the
// termination sentinel.
func (s *ChatStream) ingest(chunk []byte) {
	s.buf = append(s.buf, chunk...)

	for s.state == StateReading {
		newline := bytes.IndexByte(s.buf, '\n')
		if newline < 0 {
			return
		}

		line := s.buf[:newline]
		s.buf = s.buf[newline+1:]
		s.decodeLine(line)
	}
}

// decodeLine decodes one complete line of the event stream: strip the event
// prefix when present, recognise the termination sentinel, otherwise decode
// the payload and queue its content field as a fragment. Undecodable lines
// are skipped.
func (s *ChatStream) decodeLine(line []byte) {
	line = bytes.TrimSuffix(line, []byte("\r"))

	payload := line
	if bytes.HasPrefix(line, dataPrefix) {
		payload = line[len(dataPrefix):]
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return
	}
	if string(trimmed) == models.StreamDonePayload {
		s.state = StateDone
		return
	}

	var event models.StreamEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		if s.OnDecodeError != nil {
			s.OnDecodeError(string(line), err)
		}
		return
	}

	if event.Content != nil {
		s.pending = append(s.pending, *event.Content)
	}
}
