package assets

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlayerSprite(t *testing.T) {
	img, err := Decode("player.png")
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestDecodeMissing(t *testing.T) {
	_, err := Decode("nope.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDecodeCorrupt(t *testing.T) {
	fsys := fstest.MapFS{"images/bad.png": {Data: []byte("not a png")}}
	_, err := decodeFrom(fsys, "images/bad.png")
	assert.ErrorContains(t, err, "decode image")
}
