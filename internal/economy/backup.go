package economy

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"florbot/internal/economy/interfaces"
	"florbot/internal/providers"
	"florbot/internal/structures"
)

const backupExt = ".json.zst"

// BackupWriter keeps rotating zstd snapshots of the economy file, so a bad
// migration or operator mistake can be rolled back by hand.
type BackupWriter struct {
	dir        string
	keep       int
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewBackupWriter(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *BackupWriter {
	keep := conf.Persistence.BackupKeep
	if keep <= 0 {
		keep = 7
	}
	return &BackupWriter{
		dir:        conf.Persistence.BackupDir,
		keep:       keep,
		compressor: compressor,
		logger:     logger,
	}
}

// Snapshot compresses the current backing file into a timestamped copy and
// prunes the oldest snapshots beyond the retention count. A missing backing
// file is not an error; there is simply nothing to back up yet.
func (b *BackupWriter) Snapshot(srcPath string) error {
	if b.dir == "" {
		return nil
	}

	raw, err := os.ReadFile(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	data, err := b.compressor.Compress(raw)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return err
	}

	name := fmt.Sprintf("economia-%s%s", time.Now().UTC().Format("20060102T150405"), backupExt)
	if err := os.WriteFile(filepath.Join(b.dir, name), data, 0644); err != nil {
		return err
	}
	b.logger.Infof(providers.TypeApp, "Wrote economy backup %s (%d bytes)", name, len(data))

	return b.prune()
}

func (b *BackupWriter) prune() error {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return err
	}

	var snapshots []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), backupExt) {
			snapshots = append(snapshots, e.Name())
		}
	}
	if len(snapshots) <= b.keep {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(snapshots)
	for _, name := range snapshots[:len(snapshots)-b.keep] {
		if err := os.Remove(filepath.Join(b.dir, name)); err != nil {
			return err
		}
		b.logger.Debugf(providers.TypeApp, "Pruned old backup %s", name)
	}
	return nil
}
