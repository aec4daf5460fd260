package mount

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardkit/picodeploy/pkg/transfer"
)

func newMount(t *testing.T, mountPath string) *Transport {
	t.Helper()

	tr, err := New(transfer.Config{
		Name:      "circuitpy",
		Type:      "mount",
		RemoteDir: "/",
		Options:   map[string]interface{}{"path": mountPath},
	})
	require.NoError(t, err)
	return tr
}

func TestNew(t *testing.T) {
	t.Run("missing_path_option", func(t *testing.T) {
		_, err := New(transfer.Config{Name: "circuitpy", Options: map[string]interface{}{}})
		assert.ErrorIs(t, err, transfer.ErrInvalidConfig)
	})

	t.Run("unplugged_board", func(t *testing.T) {
		_, err := New(transfer.Config{
			Name:    "circuitpy",
			Options: map[string]interface{}{"path": filepath.Join(t.TempDir(), "CIRCUITPY")},
		})
		assert.ErrorIs(t, err, transfer.ErrConnFailed)
	})

	t.Run("stat_failure_is_not_reported_as_unplugged", func(t *testing.T) {
		// A name too long for the filesystem fails stat with something
		// other than absence; that must not get the "plug the board in"
		// treatment reserved for a missing mount point.
		tooLong := filepath.Join(t.TempDir(), strings.Repeat("x", 300))

		_, err := New(transfer.Config{
			Name:    "circuitpy",
			Options: map[string]interface{}{"path": tooLong},
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, transfer.ErrConnFailed)
		assert.Contains(t, err.Error(), "mount point")
	})

	t.Run("mount_point_is_a_file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "not-a-mount")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := New(transfer.Config{
			Name:    "circuitpy",
			Options: map[string]interface{}{"path": file},
		})
		assert.ErrorIs(t, err, transfer.ErrInvalidConfig)
	})
}

func TestPutListRemove(t *testing.T) {
	ctx := context.Background()

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "main.py"), []byte("print('boot')\n"), 0644))

	mnt := t.TempDir()
	tr := newMount(t, mnt)

	// Put lands the file on the mount
	require.NoError(t, tr.Put(ctx, filepath.Join(src, "main.py"), "main.py"))

	data, err := os.ReadFile(filepath.Join(mnt, "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('boot')\n", string(data))

	// List sees it
	files, err := tr.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "main.py", files[0].Path)
	assert.Equal(t, int64(14), files[0].Size)

	// Exists agrees
	found, err := tr.Exists(ctx, "main.py")
	require.NoError(t, err)
	assert.True(t, found)

	// Remove deletes it
	require.NoError(t, tr.Remove(ctx, "main.py"))

	found, err = tr.Exists(ctx, "main.py")
	require.NoError(t, err)
	assert.False(t, found)

	// Removing again reports not found
	assert.ErrorIs(t, tr.Remove(ctx, "main.py"), transfer.ErrNotFound)
}

func TestPut_MissingLocalFile(t *testing.T) {
	tr := newMount(t, t.TempDir())

	err := tr.Put(context.Background(), filepath.Join(t.TempDir(), "ghost.py"), "ghost.py")
	assert.Error(t, err)
}

func TestList_SkipsDirectories(t *testing.T) {
	mnt := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(mnt, "lib"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(mnt, "boot.py"), []byte("pass\n"), 0644))

	tr := newMount(t, mnt)

	files, err := tr.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "boot.py", files[0].Path)
}
