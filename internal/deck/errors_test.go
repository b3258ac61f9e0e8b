package deck

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("boom")

	testCases := []struct {
		err  *Error
		want string
	}{
		{wrap(CodeWriteFailure, "a.cbor", cause), "save deck a.cbor: boom"},
		{wrap(CodeReadFailure, "b.cbor", cause), "load deck b.cbor: boom"},
		{wrap(CodeDecodeFailure, "c.cbor", cause), "decode deck c.cbor: boom"},
		{wrap(CodeDecodeFailure, "", nil), "decode deck"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("deal: %w", wrap(CodeReadFailure, "x", cause))

	assert.ErrorIs(t, err, ErrReadFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDecodeFailure)
	assert.NotErrorIs(t, err, ErrWriteFailure)
}
