package mock_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/fold/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmenter_Boundaries(t *testing.T) {
	t.Parallel()
	t.Run("delegates to BoundariesFn", func(t *testing.T) {
		t.Parallel()
		s := mock.Segmenter{
			BoundariesFn: func(line []byte) ([]int, error) {
				return []int{0, len(line) - 1}, nil
			},
		}
		got, err := s.Boundaries([]byte("abc"))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("bad text")
		s := mock.Segmenter{
			BoundariesFn: func([]byte) ([]int, error) {
				return nil, wantErr
			},
		}
		_, err := s.Boundaries(nil)
		assert.ErrorIs(t, err, wantErr)
	})
}
