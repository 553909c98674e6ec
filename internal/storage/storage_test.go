package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalUpload(t *testing.T) {
	l := &Local{Root: t.TempDir(), BaseURL: "https://hub.example.com"}

	require.NoError(t, l.Upload("logos/u1/logo.png", strings.NewReader("png-bytes")))

	b, err := os.ReadFile(filepath.Join(l.Root, "logos", "u1", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))
}

func TestLocalUploadStaysUnderRoot(t *testing.T) {
	root := t.TempDir()
	l := &Local{Root: root}

	require.NoError(t, l.Upload("../../etc/evil.png", strings.NewReader("x")))

	_, err := os.Stat(filepath.Join(root, "etc", "evil.png"))
	assert.NoError(t, err)
}

func TestLocalPublicURL(t *testing.T) {
	l := &Local{BaseURL: "https://hub.example.com/"}
	assert.Equal(t, "https://hub.example.com/uploads/logos/u1/logo.png", l.PublicURL("/logos/u1/logo.png"))
}
