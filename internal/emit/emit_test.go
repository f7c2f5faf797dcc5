package emit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.php")
	require.NoError(t, os.WriteFile(path, []byte("<?php\n"), 0o644))

	require.NoError(t, Append(path, []byte("Route::get('/a');\n")))
	require.NoError(t, Append(path, []byte("Route::get('/b');\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<?php\nRoute::get('/a');\nRoute::get('/b');\n", string(data))
}

func TestAppend_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.php")

	err := Append(path, []byte("Route::get('/a');\n"))
	assert.ErrorIs(t, err, ErrRoutesFileMissing)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAppend_Directory(t *testing.T) {
	err := Append(t.TempDir(), []byte("x"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRoutesFileMissing)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "routes.yaml")

	require.NoError(t, Write(path, []byte("first")))
	require.NoError(t, Write(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestStdout(t *testing.T) {
	var buf bytes.Buffer
	original := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = original })

	require.NoError(t, Write(Stdout, []byte("one\n")))
	require.NoError(t, Append(Stdout, []byte("two\n")))
	assert.Equal(t, "one\ntwo\n", buf.String())
}
