package gdndoc_test

import (
	"testing"

	"github.com/fwojciec/gdndoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    gdndoc.DocVersion
		wantErr bool
	}{
		{name: "script", input: "script", want: gdndoc.VersionScript},
		{name: "engine", input: "engine", want: gdndoc.VersionEngine},
		{name: "foundation", input: "foundation", want: gdndoc.VersionFoundation},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "utils", wantErr: true},
		{name: "case sensitive", input: "Script", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := gdndoc.ParseDocVersion(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, gdndoc.EINVALID, gdndoc.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocVersion_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, gdndoc.VersionScript.Valid())
	assert.True(t, gdndoc.VersionEngine.Valid())
	assert.True(t, gdndoc.VersionFoundation.Valid())
	assert.False(t, gdndoc.DocVersion("").Valid())
	assert.False(t, gdndoc.DocVersion("other").Valid())
}
