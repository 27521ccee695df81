package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"florbot/internal/identity"
	"florbot/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// HasLevel reports whether any recorded entry was logged at the given level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range m.Logs {
		if entry.Level == level {
			return true
		}
	}
	return false
}

// MockMetrics implements providers.MetricsProviderInterface and records calls.
type MockMetrics struct {
	mu               sync.Mutex
	Commands         []CommandObservation
	PersistenceCount int
	LidResolutions   map[string]int
	UsersTotal       int
	ListingsTotal    int
}

type CommandObservation struct {
	Command string
	OK      bool
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{LidResolutions: make(map[string]int)}
}

func (m *MockMetrics) IncCommandsTotal(command string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, CommandObservation{Command: command, OK: ok})
}

func (m *MockMetrics) ObserveCommandDuration(string, time.Duration) {}

func (m *MockMetrics) ObservePersistenceDuration(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceCount++
}

func (m *MockMetrics) IncLidResolutions(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LidResolutions[outcome]++
}

func (m *MockMetrics) SetUsersTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UsersTotal = count
}

func (m *MockMetrics) SetListingsTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListingsTotal = count
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockResolver implements identity.Resolver with an injectable mapping.
type MockResolver struct {
	Mapping map[string]string
	Err     error
	Calls   int
}

func (m *MockResolver) PhoneForLID(_ context.Context, lid string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Mapping[lid], nil
}

// NewTestNormalizer returns an identity.Normalizer that lowercases the server
// part, mirroring what the transport normalizer does without a real client.
func NewTestNormalizer() identity.Normalizer {
	return func(jid string) (string, error) {
		at := strings.LastIndex(jid, "@")
		if at < 0 {
			return jid, nil
		}
		return jid[:at+1] + strings.ToLower(jid[at+1:]), nil
	}
}
