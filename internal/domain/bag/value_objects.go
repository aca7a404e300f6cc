package bag

import (
	"crypto/rand"
	"errors"
	"strings"
)

var (
	ErrInvalidBagTag = errors.New("invalid bag tag format")
	ErrNoteTooLong   = errors.New("note too long")
)

const (
	bagTagPrefix  = "B-"
	bagTagLength  = 6
	MaxNoteLength = 500
)

// tagAlphabet avoids 0/O and 1/I so printed tags survive handwriting and
// low-quality thermal prints.
const tagAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// BagTag is the short human-presentable identifier printed on the physical
// tag, e.g. "B-7KQ2MX". It is the operational lookup key for scans.
type BagTag struct {
	value string
}

func NewBagTag(s string) (BagTag, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, bagTagPrefix) || len(s) != len(bagTagPrefix)+bagTagLength {
		return BagTag{}, ErrInvalidBagTag
	}
	for _, r := range s[len(bagTagPrefix):] {
		if !strings.ContainsRune(tagAlphabet, r) {
			return BagTag{}, ErrInvalidBagTag
		}
	}
	return BagTag{value: s}, nil
}

// GenerateBagTag draws a fresh random tag. Uniqueness is enforced by the
// storage layer; the caller retries on a duplicate-key collision.
func GenerateBagTag() (BagTag, error) {
	buf := make([]byte, bagTagLength)
	if _, err := rand.Read(buf); err != nil {
		return BagTag{}, err
	}
	var b strings.Builder
	b.WriteString(bagTagPrefix)
	for _, c := range buf {
		b.WriteByte(tagAlphabet[int(c)%len(tagAlphabet)])
	}
	return BagTag{value: b.String()}, nil
}

func (t BagTag) Value() string {
	return t.value
}

// QRPayload is the opaque string embedded in the bag's printed QR code.
// Scanners hand it back verbatim; only the suffix after "bag:" matters.
func (t BagTag) QRPayload() string {
	return "bag:" + t.value
}

// Note is an optional operator annotation attached to a timeline event.
type Note struct {
	text string
}

func NewNote(s string) (Note, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{text: t}, nil
}

func (n Note) String() string { return n.text }
func (n Note) IsEmpty() bool  { return n.text == "" }
