package economy

import (
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"florbot/internal/identity"
	"florbot/internal/providers"
	"florbot/internal/structures"
)

// Store loads and saves the economy document. All mutating access goes through
// WithLock/Update; the backing file must never be touched directly.
type Store struct {
	path    string
	canon   *identity.Canonicalizer
	queue   *taskQueue
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewStore(conf *structures.Config, canon *identity.Canonicalizer, logger providers.Logger, metrics providers.MetricsProviderInterface) *Store {
	return &Store{
		path:    conf.Persistence.FilePath,
		canon:   canon,
		queue:   newTaskQueue(),
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Store) Path() string { return s.path }

// Load reads the backing file, repairs its shape and runs the migration pass.
// A missing file materializes a fresh default document on disk; a corrupt file
// degrades to an empty document instead of failing the caller.
func (s *Store) Load() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		doc := NewDocument()
		if err := s.Save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	doc := decodeDocument(raw)
	if doc == nil {
		s.logger.Warnf(providers.TypeApp, "Economy file %s is not valid JSON, starting from an empty document", s.path)
		doc = NewDocument()
	}

	doc.repairShape()
	migrate(doc, s.logger)
	return doc, nil
}

// Save serializes the document and replaces the backing file atomically:
// write to <path>.tmp, fsync, rename. Readers never observe a partial file,
// and a crash mid-write leaves the previous durable copy intact.
func (s *Store) Save(doc *Document) error {
	start := time.Now()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, s.path); err != nil {
		return err
	}

	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

// WithLock schedules fn behind every previously submitted operation. The error
// returned is fn's own; a failure never blocks or poisons later operations.
func (s *Store) WithLock(fn func() error) error {
	return s.queue.Do(fn)
}

// Update runs a whole load→mutate→save cycle under the lock. If fn returns an
// error the document is still saved, matching command semantics where partial
// progress (cooldowns, counters) must not be rolled back.
func (s *Store) Update(fn func(doc *Document) error) error {
	return s.queue.Do(func() error {
		doc, err := s.Load()
		if err != nil {
			return err
		}
		fnErr := fn(doc)
		if err := s.Save(doc); err != nil {
			return err
		}
		return fnErr
	})
}

// View runs fn with a freshly loaded document under the lock, without saving.
func (s *Store) View(fn func(doc *Document) error) error {
	return s.queue.Do(func() error {
		doc, err := s.Load()
		if err != nil {
			return err
		}
		return fn(doc)
	})
}
