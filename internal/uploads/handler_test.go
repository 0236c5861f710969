package uploads

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return h
}

func TestAcceptStoresFile(t *testing.T) {
	h := newTestHandler(t)

	name, err := h.Accept(bytes.NewReader([]byte("png bytes")), "vase.png")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, "_vase.png"))
	assert.NotContains(t, name, "/")

	data, err := os.ReadFile(filepath.Join(h.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
}

func TestAcceptRejectsDisallowedExtensions(t *testing.T) {
	h := newTestHandler(t)

	for _, name := range []string{"malware.exe", "notes.txt", "archive.tar.gz", "noextension", "trailingdot."} {
		_, err := h.Accept(bytes.NewReader([]byte("x")), name)
		assert.ErrorIs(t, err, ErrTypeNotAllowed, name)
	}
}

func TestAcceptRejectsEmptyFilename(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Accept(bytes.NewReader([]byte("x")), "")
	assert.ErrorIs(t, err, ErrNoFilename)

	_, err = h.Accept(bytes.NewReader([]byte("x")), "   ")
	assert.ErrorIs(t, err, ErrNoFilename)
}

func TestAcceptIsCaseInsensitiveOnExtension(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Accept(bytes.NewReader([]byte("x")), "PHOTO.JPG")
	assert.NoError(t, err)

	_, err = h.Accept(bytes.NewReader([]byte("x")), "clip.Mp3")
	assert.NoError(t, err)
}

func TestAcceptSameNameTwiceProducesDistinctFiles(t *testing.T) {
	h := newTestHandler(t)

	first, err := h.Accept(bytes.NewReader([]byte("one")), "vase.png")
	require.NoError(t, err)
	second, err := h.Accept(bytes.NewReader([]byte("two")), "vase.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	one, err := os.ReadFile(filepath.Join(h.Dir(), first))
	require.NoError(t, err)
	two, err := os.ReadFile(filepath.Join(h.Dir(), second))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), one)
	assert.Equal(t, []byte("two"), two)
}

func TestAcceptSanitizesTraversalAttempts(t *testing.T) {
	h := newTestHandler(t)

	name, err := h.Accept(bytes.NewReader([]byte("x")), "../../evil.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_evil.png"))

	name, err = h.Accept(bytes.NewReader([]byte("x")), `..\..\evil.png`)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_evil.png"))

	entries, err := os.ReadDir(h.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestResolveGuardsDirectory(t *testing.T) {
	h := newTestHandler(t)

	name, err := h.Accept(bytes.NewReader([]byte("bytes")), "vase.png")
	require.NoError(t, err)

	path, err := h.Resolve(name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(h.Dir(), name), path)

	// Traversal prefixes are stripped; the lookup stays inside the
	// upload directory.
	path, err = h.Resolve("../" + name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(h.Dir(), name), path)

	_, err = h.Resolve("../../etc/passwd")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = h.Resolve("missing.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("a.png"))
	assert.True(t, AllowedFile("a.b.gif"))
	assert.True(t, AllowedFile("sound.WAV"))
	assert.False(t, AllowedFile("a.png.exe"))
	assert.False(t, AllowedFile("a"))
	assert.False(t, AllowedFile("a."))
}
