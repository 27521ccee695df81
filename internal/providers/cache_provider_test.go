package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"florbot/internal/structures"
)

type discardLogger struct{}

func (discardLogger) Debugf(TypeEnum, string, ...interface{}) {}
func (discardLogger) Infof(TypeEnum, string, ...interface{})  {}
func (discardLogger) Warnf(TypeEnum, string, ...interface{})  {}
func (discardLogger) Errorf(TypeEnum, string, ...interface{}) {}
func (discardLogger) Fatalf(TypeEnum, string, ...interface{}) {}
func (discardLogger) Close()                                  {}

func TestNewCacheProvider_Disabled(t *testing.T) {
	conf := &structures.Config{Cache: structures.CacheConfig{Enabled: false}}

	cache := NewCacheProvider(conf, discardLogger{})
	cache.Set("key", []byte("value"))

	_, ok := cache.Get("key")
	assert.False(t, ok, "disabled cache never stores")
}

func TestNewCacheProvider_SetGet(t *testing.T) {
	conf := &structures.Config{Cache: structures.CacheConfig{
		Enabled: true,
		Size:    1,
		TTL:     time.Minute,
	}}

	cache := NewCacheProvider(conf, discardLogger{})
	cache.Set("lid:123@lid", []byte("123@s.whatsapp.net"))

	val, ok := cache.Get("lid:123@lid")
	assert.True(t, ok)
	assert.Equal(t, []byte("123@s.whatsapp.net"), val)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestNewCacheProvider_ZeroSizeDisables(t *testing.T) {
	conf := &structures.Config{Cache: structures.CacheConfig{Enabled: true, Size: 0}}

	cache := NewCacheProvider(conf, discardLogger{})
	cache.Set("key", []byte("value"))

	_, ok := cache.Get("key")
	assert.False(t, ok)
}
