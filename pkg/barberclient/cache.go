package barberclient

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	body    []byte
	expires time.Time
}

// queryCache keeps raw response bodies keyed by request path. Callers
// decode their own copy, so cached values are never shared.
type queryCache struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	rows map[string]entry
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		ttl:  ttl,
		now:  time.Now,
		rows: make(map[string]entry),
	}
}

func (q *queryCache) get(key string) ([]byte, bool) {
	if q.ttl <= 0 {
		return nil, false
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.rows[key]
	if !ok {
		return nil, false
	}
	if q.now().After(e.expires) {
		delete(q.rows, key)
		return nil, false
	}
	return e.body, true
}

func (q *queryCache) set(key string, body []byte) {
	if q.ttl <= 0 {
		return
	}
	q.mu.Lock()
	q.rows[key] = entry{body: body, expires: q.now().Add(q.ttl)}
	q.mu.Unlock()
}

// invalidate drops every key starting with one of the prefixes.
func (q *queryCache) invalidate(prefixes ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for key := range q.rows {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(q.rows, key)
				break
			}
		}
	}
}

func (q *queryCache) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.rows)
}
