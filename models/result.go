package models

import (
	"sort"
)

// ResultChunk is one fragment of a job result payload. Large results are
// served in fragments; the server assigns each fragment a sequence index
// and the client must reassemble by that index, never by arrival order.
type ResultChunk struct {
	// Sequence is the zero-based position of this fragment within the
	// full payload.
	Sequence int `json:"sequence"`

	// Payload is the fragment content. The wire form is base64; Go's
	// encoding/json decodes it into the byte slice directly.
	Payload []byte `json:"payload"`
}

// ResultResponse is one page of the job result endpoint. Next carries the
// offset of the following page, or nil on the last page.
type ResultResponse struct {
	Chunks []ResultChunk `json:"chunks"`
	Next   *int          `json:"next,omitempty"`
}

// AssembleResult concatenates chunks into the original payload. Chunks are
// ordered by their sequence index first, so callers may pass them in any
// arrival order. The input slice is not modified.
func AssembleResult(chunks []ResultChunk) []byte {
	ordered := make([]ResultChunk, len(chunks))
	copy(ordered, chunks)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Sequence < ordered[j].Sequence
	})

	var size int
	for _, c := range ordered {
		size += len(c.Payload)
	}

	payload := make([]byte, 0, size)
	for _, c := range ordered {
		payload = append(payload, c.Payload...)
	}
	return payload
}
