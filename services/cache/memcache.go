package cache

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// MemcacheService backs CacheService with memcached, so rate-limit blocks
// survive across pipeline runs on the same host.
type MemcacheService struct {
	client *memcache.Client
}

// NewMemcacheService connects to the memcached instance at serverAddr
func NewMemcacheService(serverAddr string) *MemcacheService {
	return &MemcacheService{
		client: memcache.New(serverAddr),
	}
}

// Get returns the value stored under key; a miss is an error
func (m *MemcacheService) Get(key string) ([]byte, error) {
	item, err := m.client.Get(key)
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

// Set stores value under key until the expiration elapses
func (m *MemcacheService) Set(key string, value []byte, expiration time.Duration) error {
	return m.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(expiration.Seconds()),
	})
}

// Delete clears key, lifting any block it recorded
func (m *MemcacheService) Delete(key string) error {
	return m.client.Delete(key)
}
