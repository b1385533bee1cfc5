package textdiff

import (
	"fmt"
	"unicode/utf8"
)

// Buffer patching.
//
// An edit script is applied against a live buffer instead of replacing
// its whole content, which lets a caller (an editor, typically) keep
// buffer-local state like scroll position and cursors. Offsets are rune
// offsets, matching the granularity the diff was computed at.

// Buffer is a mutable text buffer addressed by rune offsets. The buffer
// must not be mutated concurrently while a script is being applied; the
// cursor arithmetic assumes it is the single writer.
type Buffer interface {
	// Len returns the current length of the buffer in runes.
	Len() int
	// Slice returns the text in [start, end).
	Slice(start, end int) string
	// Replace substitutes text for the span [start, end).
	Replace(start, end int, text string)
}

// StringBuffer is an in-memory Buffer backed by a rune slice.
type StringBuffer struct {
	runes []rune
}

// NewStringBuffer returns a StringBuffer holding text.
func NewStringBuffer(text string) *StringBuffer {
	return &StringBuffer{runes: []rune(text)}
}

// Len returns the buffer length in runes.
func (b *StringBuffer) Len() int {
	return len(b.runes)
}

// Slice returns the text in [start, end).
func (b *StringBuffer) Slice(start, end int) string {
	return string(b.runes[start:end])
}

// Replace substitutes text for the span [start, end).
func (b *StringBuffer) Replace(start, end int, text string) {
	insert := []rune(text)
	out := make([]rune, 0, len(b.runes)-(end-start)+len(insert))
	out = append(out, b.runes[:start]...)
	out = append(out, insert...)
	out = append(out, b.runes[end:]...)
	b.runes = out
}

// String returns the current buffer contents.
func (b *StringBuffer) String() string {
	return string(b.runes)
}

// MismatchError reports that the buffer's contents at application time
// disagree with the text the script was computed against, e.g. because
// the buffer was edited concurrently. The script must not be applied
// further; the buffer is left with every operation before the mismatch
// already applied.
type MismatchError struct {
	Offset int    // rune offset of the failed verification
	Want   string // text the script expected
	Got    string // text actually in the buffer
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("textdiff: patch mismatch at offset %d: want %q, got %q", e.Offset, e.Want, e.Got)
}

// Patch replays an edit script against buf, whose contents must equal
// the old text the script was computed from. Equal and Delete spans are
// verified against the expected text before the cursor moves past or
// removes them; any disagreement aborts with a *MismatchError.
func Patch(buf Buffer, edits []Edit) error {
	cursor := 0
	for _, e := range edits {
		switch e.Type {
		case Equal:
			end, err := verifySpan(buf, cursor, e.Text)
			if err != nil {
				return err
			}
			cursor = end
		case Delete:
			end, err := verifySpan(buf, cursor, e.Text)
			if err != nil {
				return err
			}
			// Content shifts left; the cursor stays put.
			buf.Replace(cursor, end, "")
		case Insert:
			buf.Replace(cursor, cursor, e.Text)
			cursor += runeLen(e.Text)
		}
	}
	return nil
}

// verifySpan checks that the buffer holds want at [cursor, cursor+len)
// and returns the end offset of the span.
func verifySpan(buf Buffer, cursor int, want string) (int, error) {
	end := cursor + utf8.RuneCountInString(want)
	if end > buf.Len() {
		return 0, &MismatchError{Offset: cursor, Want: want, Got: buf.Slice(cursor, buf.Len())}
	}
	if got := buf.Slice(cursor, end); got != want {
		return 0, &MismatchError{Offset: cursor, Want: want, Got: got}
	}
	return end, nil
}

// Apply is a convenience wrapper: it patches a fresh StringBuffer
// initialized to old and returns the resulting text. Applying the script
// from Diff(old, new) yields new.
func Apply(old string, edits []Edit) (string, error) {
	buf := NewStringBuffer(old)
	if err := Patch(buf, edits); err != nil {
		return "", err
	}
	return buf.String(), nil
}
