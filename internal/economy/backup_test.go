package economy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"florbot/internal/structures"
	"florbot/internal/testutil"
)

func newTestBackupWriter(t *testing.T, keep int) (*BackupWriter, string) {
	t.Helper()
	dir := t.TempDir()
	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	conf := &structures.Config{
		Persistence: structures.Persistence{BackupDir: dir, BackupKeep: keep},
	}
	return NewBackupWriter(conf, comp, &testutil.MockLogger{}), dir
}

func TestBackupWriter_SnapshotWritesCompressedCopy(t *testing.T) {
	bw, dir := newTestBackupWriter(t, 7)

	src := filepath.Join(t.TempDir(), "economia.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"version":2,"users":{}}`), 0644))

	require.NoError(t, bw.Snapshot(src))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "economia-"))
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".json.zst"))

	// Round-trips back to the original content.
	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	plain, err := comp.Decompress(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2,"users":{}}`, string(plain))
}

func TestBackupWriter_SnapshotMissingSourceIsNoop(t *testing.T) {
	bw, dir := newTestBackupWriter(t, 7)

	require.NoError(t, bw.Snapshot(filepath.Join(t.TempDir(), "missing.json")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBackupWriter_NoDirConfiguredIsNoop(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	bw := NewBackupWriter(&structures.Config{}, comp, &testutil.MockLogger{})

	assert.NoError(t, bw.Snapshot("/anything.json"))
}

func TestBackupWriter_PrunesOldestBeyondRetention(t *testing.T) {
	bw, dir := newTestBackupWriter(t, 2)

	for _, name := range []string{
		"economia-20200101T000000.json.zst",
		"economia-20200102T000000.json.zst",
		"economia-20200103T000000.json.zst",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	src := filepath.Join(t.TempDir(), "economia.json")
	require.NoError(t, os.WriteFile(src, []byte(`{}`), 0644))
	require.NoError(t, bw.Snapshot(src))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.NotContains(t, names, "economia-20200101T000000.json.zst")
	assert.NotContains(t, names, "economia-20200102T000000.json.zst")
}
