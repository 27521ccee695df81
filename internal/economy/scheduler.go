package economy

import (
	"time"

	"github.com/roylee0704/gron"

	"florbot/internal/economy/interfaces"
	"florbot/internal/providers"
	"florbot/internal/structures"
)

// Scheduler runs the periodic maintenance jobs: compressed backups of the
// economy file and gauge refreshes. Mutating work still goes through the
// store's queue; the scheduler never touches the file directly.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	store   *Store
	backup  *BackupWriter
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	interval := s.config.Persistence.BackupInterval
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	s.cron.AddFunc(gron.Every(interval), func() {
		err := s.store.WithLock(func() error {
			return s.backup.Snapshot(s.store.Path())
		})
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while writing backup: %s", err)
		}
	})

	s.cron.AddFunc(gron.Every(1*time.Minute), func() {
		s.refreshGauges()
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore loads the document once at startup and writes it straight back, so
// key folding and partition merges are durable before the first command runs.
func (s *Scheduler) Restore() error {
	return s.store.WithLock(func() error {
		doc, err := s.store.Load()
		if err != nil {
			return err
		}
		if err := s.store.Save(doc); err != nil {
			return err
		}
		s.logger.Infof(providers.TypeApp, "Economy restored: %d users, %d listings", len(doc.Users), len(doc.Market))
		return nil
	})
}

// Persist writes a final backup on shutdown.
func (s *Scheduler) Persist() error {
	err := s.store.WithLock(func() error {
		return s.backup.Snapshot(s.store.Path())
	})
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while writing shutdown backup: %s", err)
		return err
	}
	return nil
}

func (s *Scheduler) refreshGauges() {
	err := s.store.View(func(doc *Document) error {
		s.metrics.SetUsersTotal(len(doc.Users))
		s.metrics.SetListingsTotal(len(doc.Market))
		return nil
	})
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while refreshing gauges: %s", err)
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, store *Store, backup *BackupWriter, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		store:   store,
		backup:  backup,
		metrics: metrics,
	}
}
