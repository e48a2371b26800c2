package imagery

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderLabel(t *testing.T) {
	tests := []struct {
		name   string
		topics []string
		want   string
	}{
		{"first topic", []string{"mandate", "delete"}, "Visual Alpha - mandate"},
		{"no topics", nil, "Visual Alpha - Info"},
		{"blank topic", []string{"  "}, "Visual Alpha - Info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceholderLabel(tt.topics))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	data, err := Placeholder([]string{"team"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, PlaceholderWidth, img.Bounds().Dx())
	assert.Equal(t, PlaceholderHeight, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0x1f, 0x29, 0x37}, [3]uint32{r >> 8, g >> 8, b >> 8}, "corner keeps the background")

	white := false
	for x := 0; x < PlaceholderWidth && !white; x++ {
		r, g, b, _ := img.At(x, PlaceholderHeight/2).RGBA()
		white = r == 0xffff && g == 0xffff && b == 0xffff
	}
	assert.True(t, white, "caption is drawn across the middle row")
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#2563eb")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}, c)

	for _, bad := range []string{"", "#fff", "#zzzzzz", "2563eb00"} {
		_, err := ParseHex(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestFileResolver(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0755))
	content := []byte("not really a png")
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "team.png"), content, 0644))

	r := NewFileResolver(root)

	t.Run("empty reference", func(t *testing.T) {
		img, err := r.Resolve("", []string{"team"})
		require.NoError(t, err)
		assert.Nil(t, img)
	})

	t.Run("existing file", func(t *testing.T) {
		img, err := r.Resolve("images/team.png", nil)
		require.NoError(t, err)
		assert.Equal(t, content, img.Data)
		assert.False(t, img.Placeholder)
		assert.Equal(t, base64.StdEncoding.EncodeToString(content), img.Base64())
	})

	t.Run("missing file", func(t *testing.T) {
		img, err := r.Resolve("images/missing.png", []string{"mandate"})
		require.NoError(t, err)
		assert.True(t, img.Placeholder)
		assert.Equal(t, "images/missing.png", img.Path)
		_, err = png.Decode(bytes.NewReader(img.Data))
		assert.NoError(t, err)
	})

	t.Run("stays under root", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(root), "secret.png")
		require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))
		t.Cleanup(func() { os.Remove(outside) })

		img, err := r.Resolve("../secret.png", nil)
		require.NoError(t, err)
		assert.True(t, img.Placeholder)
	})
}

func TestWriteSamples(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	written, err := WriteSamples(dir, nil)
	require.NoError(t, err)
	assert.Len(t, written, len(Samples))

	for _, s := range Samples {
		data, err := os.ReadFile(filepath.Join(dir, s.Name))
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(data))
		assert.NoError(t, err, s.Name)
	}

	again, err := WriteSamples(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, again, "existing images are kept")
}
