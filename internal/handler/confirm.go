package handler

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Confirmations tracks outstanding "close document?" prompts. Each prompt
// gets a nonce bound to the store it was asked about and expires after ttl.
type Confirmations struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewConfirmations(ttl time.Duration) *Confirmations {
	return &Confirmations{cache: cache.New(ttl, 2*ttl)}
}

// Issue returns a fresh nonce for a prompt about storeID.
func (c *Confirmations) Issue(storeID string) string {
	nonce := uuid.NewString()
	c.cache.Set(nonce, storeID, cache.DefaultExpiration)
	return nonce
}

// Redeem consumes nonce. It reports true only for a live nonce that was
// issued for storeID; any nonce is unusable after the first call.
func (c *Confirmations) Redeem(nonce, storeID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	x, found := c.cache.Get(nonce)
	if !found {
		return false
	}
	c.cache.Delete(nonce)
	return x.(string) == storeID
}

// Discard drops nonce without using it.
func (c *Confirmations) Discard(nonce string) {
	c.cache.Delete(nonce)
}
