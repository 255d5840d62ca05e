package gdndoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/gdndoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "application error", err: gdndoc.Errorf(gdndoc.ENOTFOUND, "no such page"), want: gdndoc.ENOTFOUND},
		{name: "wrapped application error", err: fmt.Errorf("landing page: %w", gdndoc.Errorf(gdndoc.EUNAVAILABLE, "HTTP 503")), want: gdndoc.EUNAVAILABLE},
		{name: "non-application error", err: errors.New("boom"), want: gdndoc.EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gdndoc.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", gdndoc.ErrorMessage(nil))
	assert.Equal(t, "no such page", gdndoc.ErrorMessage(gdndoc.Errorf(gdndoc.ENOTFOUND, "no such page")))
	assert.Equal(t, "Internal error.", gdndoc.ErrorMessage(errors.New("boom")))
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := gdndoc.Errorf(gdndoc.EINVALID, "bad version %q", "fs22")
	assert.Equal(t, `gdndoc error: code=invalid message=bad version "fs22"`, err.Error())
}
