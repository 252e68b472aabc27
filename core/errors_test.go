package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EFORMAT, "header of font %q", "standard")
	assert.Equal(t, EFORMAT, Code(err))
	assert.Equal(t, `header of font "standard"`, UserMessage(err))
	assert.Equal(t, "[124] format error", err.Error())
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	plain := errors.New("plain")
	assert.Equal(t, EINTERNAL, Code(plain))
	assert.Equal(t, "internal error", UserMessage(plain))
}

func TestWrappedErrors(t *testing.T) {
	base := errors.New("no such file")
	err := WrapError(base, EMISSING, "font %s not found", "big")
	assert.True(t, errors.Is(err, base))
	outer := fmt.Errorf("loading: %w", err)
	assert.Equal(t, EMISSING, Code(outer))
	assert.Equal(t, "font big not found", UserMessage(outer))
	//
	err = ErrorWithCode(nil, ELIMIT)
	assert.Equal(t, ELIMIT, Code(err))
	assert.Equal(t, "limit exceeded", UserMessage(err))
}
