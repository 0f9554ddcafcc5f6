package keyset

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/friendsofgo/errors"
)

const cursorPrefix = "cursor:id:"

// EncodeCursor encodes an id into an opaque base64 string of the form "cursor:id:NUMBER".
// Opaque cursors are meant for transports (URLs, JSON APIs); State itself keeps raw ids.
func EncodeCursor(id int64) string {
	return base64.URLEncoding.EncodeToString([]byte(cursorPrefix + strconv.FormatInt(id, 10)))
}

// EncodeCursorPtr is EncodeCursor for optional ids. It returns nil for nil.
func EncodeCursorPtr(id *int64) *string {
	if id == nil {
		return nil
	}
	encoded := EncodeCursor(*id)
	return &encoded
}

// DecodeCursor extracts the id from a cursor produced by EncodeCursor.
//
// Unlike offset cursors, a bad id cursor cannot fall back to a default
// position without silently moving the caller, so every failure is reported
// as ErrInvalidCursor.
func DecodeCursor(input string) (int64, error) {
	decoded, err := base64.URLEncoding.DecodeString(input)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidCursor, err.Error())
	}

	raw, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidCursor, "unexpected format %q", string(decoded))
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidCursor, "bad id %q", raw)
	}

	return id, nil
}

// DecodeCursorPtr is DecodeCursor for optional cursors. nil and "" decode to nil.
func DecodeCursorPtr(input *string) (*int64, error) {
	if input == nil || *input == "" {
		return nil, nil
	}
	id, err := DecodeCursor(*input)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
