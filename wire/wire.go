// Package wire serializes batches of nanbox words for transport across
// process boundaries.
//
// A frame carries raw bit patterns, not object graphs: tags whose
// payloads are process-local (heap pointers, registry handles) decode
// to meaningless payloads on the far side. Senders and receivers must
// agree on which tags carry portable payloads.
package wire

import (
	"fmt"

	"github.com/chazu/nanbox"
	"github.com/fxamacker/cbor/v2"
)

// FrameVersion is the current frame format version.
const FrameVersion = 1

// Frame is a batch of words crossing a process boundary.
type Frame struct {
	Version uint8         `cbor:"v"`
	Words   []nanbox.Word `cbor:"w"`
}

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// NewFrame builds a current-version frame around words.
func NewFrame(words []nanbox.Word) *Frame {
	return &Frame{Version: FrameVersion, Words: words}
}

// MarshalFrame serializes a Frame to CBOR bytes.
func MarshalFrame(f *Frame) ([]byte, error) {
	if f.Version != FrameVersion {
		return nil, fmt.Errorf("wire: cannot marshal frame version %d, only %d", f.Version, FrameVersion)
	}
	return cborEncMode.Marshal(f)
}

// UnmarshalFrame deserializes a Frame from CBOR bytes, rejecting
// unknown versions.
func UnmarshalFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("wire: unmarshal frame: %w", err)
	}
	if f.Version != FrameVersion {
		return nil, fmt.Errorf("wire: unsupported frame version %d", f.Version)
	}
	return &f, nil
}
