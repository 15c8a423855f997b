package api

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedReadCloser delivers its payload in fixed-size chunks and counts
// Close calls, so tests can assert both re-chunking behaviour and that the
// read handle is released exactly once.
type chunkedReadCloser struct {
	payload   []byte
	chunkSize int
	offset    int
	closes    int
}

func newChunkedBody(payload string, chunkSize int) *chunkedReadCloser {
	return &chunkedReadCloser{payload: []byte(payload), chunkSize: chunkSize}
}

func (r *chunkedReadCloser) Read(p []byte) (int, error) {
	if r.offset >= len(r.payload) {
		return 0, io.EOF
	}
	end := r.offset + r.chunkSize
	if end > len(r.payload) {
		end = len(r.payload)
	}
	n := copy(p, r.payload[r.offset:end])
	r.offset += n
	return n, nil
}

func (r *chunkedReadCloser) Close() error {
	r.closes++
	return nil
}

// failingReadCloser yields its payload in one chunk, then fails.
type failingReadCloser struct {
	payload []byte
	readErr error
	sent    bool
	closes  int
}

func (r *failingReadCloser) Read(p []byte) (int, error) {
	if !r.sent {
		r.sent = true
		return copy(p, r.payload), nil
	}
	return 0, r.readErr
}

func (r *failingReadCloser) Close() error {
	r.closes++
	return nil
}

func collectFragments(t *testing.T, s *ChatStream) []string {
	t.Helper()
	var fragments []string
	for {
		fragment, err := s.Next()
		if err == io.EOF {
			return fragments
		}
		require.NoError(t, err)
		fragments = append(fragments, fragment)
	}
}

// ── fragment decoding ────────────────────────────────────────────────────────

func TestChatStream_BasicSequence(t *testing.T) {
	payload := "data: {\"content\":\"Hello\"}\n\ndata: {\"content\":\", \"}\n\ndata: {\"content\":\"world\"}\n\ndata: [DONE]\n\n"

	s := NewChatStream(io.NopCloser(strings.NewReader(payload)))
	fragments := collectFragments(t, s)

	assert.Equal(t, []string{"Hello", ", ", "world"}, fragments)
	assert.Equal(t, StateDone, s.State())
}

// TestChatStream_RechunkingIdempotence verifies the central decoder property:
// the emitted fragment sequence does not depend on how the byte stream is cut
// into chunks, including one byte at a time and mid-line splits.
func TestChatStream_RechunkingIdempotence(t *testing.T) {
	payload := "data: {\"content\":\"alpha\"}\n" +
		"data: {\"content\":\"beta\"}\n" +
		"data: {\"content\":\"gamma delta\"}\n" +
		"data: [DONE]\n"
	want := []string{"alpha", "beta", "gamma delta"}

	for _, chunkSize := range []int{1, 2, 3, 7, 16, len(payload)} {
		body := newChunkedBody(payload, chunkSize)
		s := NewChatStream(body)

		fragments := collectFragments(t, s)

		assert.Equalf(t, want, fragments, "chunk size %d changed the output", chunkSize)
		assert.Equalf(t, 1, body.closes, "chunk size %d: body must be closed exactly once", chunkSize)
	}
}

// TestChatStream_MultibyteRuneSplitAcrossChunks verifies that UTF-8 sequences
// cut at a chunk boundary decode correctly.
func TestChatStream_MultibyteRuneSplitAcrossChunks(t *testing.T) {
	payload := "data: {\"content\":\"日本語のテキスト\"}\ndata: [DONE]\n"

	for _, chunkSize := range []int{1, 2, 5} {
		s := NewChatStream(newChunkedBody(payload, chunkSize))
		fragments := collectFragments(t, s)
		assert.Equal(t, []string{"日本語のテキスト"}, fragments)
	}
}

// ── termination sentinel ─────────────────────────────────────────────────────

// TestChatStream_NothingAfterSentinel verifies that events following the
// termination sentinel are never emitted, even when they are already
// buffered.
func TestChatStream_NothingAfterSentinel(t *testing.T) {
	payload := "data: {\"content\":\"A\"}\n\ndata: {\"content\":\"B\"}\n\ndata: [DONE]\n\ndata: {\"content\":\"C\"}\n"

	body := newChunkedBody(payload, len(payload)) // one chunk: C is in the buffer when [DONE] decodes
	s := NewChatStream(body)

	fragments := collectFragments(t, s)

	assert.Equal(t, []string{"A", "B"}, fragments)
	assert.Equal(t, StateDone, s.State())
	assert.Equal(t, 1, body.closes)
}

// ── malformed data tolerance ─────────────────────────────────────────────────

func TestChatStream_MalformedLineIsSkipped(t *testing.T) {
	payload := "data: not-json\ndata: {\"content\":\"ok\"}\ndata: [DONE]\n"

	s := NewChatStream(io.NopCloser(strings.NewReader(payload)))
	fragments := collectFragments(t, s)

	assert.Equal(t, []string{"ok"}, fragments)
}

func TestChatStream_OnDecodeErrorHook(t *testing.T) {
	payload := "data: not-json\ndata: {\"content\":\"ok\"}\ndata: [DONE]\n"

	var badLines []string
	s := NewChatStream(io.NopCloser(strings.NewReader(payload)))
	s.OnDecodeError = func(line string, err error) {
		badLines = append(badLines, line)
		assert.Error(t, err)
	}

	fragments := collectFragments(t, s)

	assert.Equal(t, []string{"ok"}, fragments, "hook must not alter the fragment sequence")
	assert.Equal(t, []string{"data: not-json"}, badLines)
}

// TestChatStream_EventWithoutContentField verifies that valid JSON without a
// content field produces no fragment, while an explicit empty content does.
func TestChatStream_EventWithoutContentField(t *testing.T) {
	payload := "data: {\"status\":\"thinking\"}\ndata: {\"content\":\"\"}\ndata: {\"content\":\"x\"}\ndata: [DONE]\n"

	s := NewChatStream(io.NopCloser(strings.NewReader(payload)))
	fragments := collectFragments(t, s)

	assert.Equal(t, []string{"", "x"}, fragments)
}

// TestChatStream_LineWithoutPrefix verifies that lines lacking the event-data
// prefix are still offered to the JSON decoder.
func TestChatStream_LineWithoutPrefix(t *testing.T) {
	payload := "{\"content\":\"bare\"}\ndata: [DONE]\n"

	s := NewChatStream(io.NopCloser(strings.NewReader(payload)))
	fragments := collectFragments(t, s)

	assert.Equal(t, []string{"bare"}, fragments)
}

// ── stream end conditions ────────────────────────────────────────────────────

func TestChatStream_EmptyStream(t *testing.T) {
	body := newChunkedBody("", 1)
	s := NewChatStream(body)

	fragment, err := s.Next()

	assert.Equal(t, io.EOF, err)
	assert.Empty(t, fragment)
	assert.Equal(t, StateDone, s.State())
	assert.Equal(t, 1, body.closes)
}

// TestChatStream_TrailingPartialLine verifies that a final line without a
// newline is decoded when the body ends.
func TestChatStream_TrailingPartialLine(t *testing.T) {
	payload := "data: {\"content\":\"first\"}\ndata: {\"content\":\"last\"}"

	s := NewChatStream(io.NopCloser(strings.NewReader(payload)))
	fragments := collectFragments(t, s)

	assert.Equal(t, []string{"first", "last"}, fragments)
}

func TestChatStream_CRLFLines(t *testing.T) {
	payload := "data: {\"content\":\"a\"}\r\ndata: {\"content\":\"b\"}\r\ndata: [DONE]\r\n"

	s := NewChatStream(io.NopCloser(strings.NewReader(payload)))
	fragments := collectFragments(t, s)

	assert.Equal(t, []string{"a", "b"}, fragments)
}

// ── failure and release semantics ────────────────────────────────────────────

// TestChatStream_ReadFailureMidStream verifies that fragments decoded before
// a transport failure remain valid, the failure surfaces as *APIError, no
// fragments follow it, and the body is still released exactly once.
func TestChatStream_ReadFailureMidStream(t *testing.T) {
	body := &failingReadCloser{
		payload: []byte("data: {\"content\":\"kept\"}\n"),
		readErr: errors.New("connection reset"),
	}
	s := NewChatStream(body)

	fragment, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "kept", fragment)

	_, err = s.Next()
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "request failed")
	assert.Contains(t, apiErr.Message, "connection reset")

	// the failure is sticky
	_, err2 := s.Next()
	assert.Equal(t, err, err2)
	assert.Equal(t, 1, body.closes)
}

// TestChatStream_AbandonedIteration verifies that Close releases the body
// when a caller walks away mid-stream, and that repeated Close is a no-op.
func TestChatStream_AbandonedIteration(t *testing.T) {
	payload := "data: {\"content\":\"one\"}\ndata: {\"content\":\"two\"}\ndata: [DONE]\n"
	body := newChunkedBody(payload, len(payload))
	s := NewChatStream(body)

	fragment, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", fragment)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.Equal(t, 1, body.closes)
	assert.Equal(t, StateDone, s.State())
}

// TestChatStream_LazyUntilFirstPull verifies that construction alone reads
// nothing from the body.
func TestChatStream_LazyUntilFirstPull(t *testing.T) {
	body := newChunkedBody("data: {\"content\":\"x\"}\n", 4)
	_ = NewChatStream(body)

	assert.Zero(t, body.offset, "no bytes may be pulled before the first Next call")
}
