package fold_test

import (
	"testing"

	"github.com/fwojciec/fold"
	"github.com/stretchr/testify/assert"
)

func TestModeFromFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bytes   bool
		chars   bool
		want    fold.Mode
		wantErr error
	}{
		{name: "defaults to graphemes", want: fold.Graphemes},
		{name: "bytes", bytes: true, want: fold.Bytes},
		{name: "chars", chars: true, want: fold.Chars},
		{name: "both conflict", bytes: true, chars: true, wantErr: fold.ErrConflictingModes},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := fold.ModeFromFlags(tt.bytes, tt.chars)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "graphemes", fold.Graphemes.String())
	assert.Equal(t, "chars", fold.Chars.String())
	assert.Equal(t, "bytes", fold.Bytes.String())
	assert.Equal(t, "Mode(7)", fold.Mode(7).String())
}
