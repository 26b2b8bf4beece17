package router

import (
	"sync"
	"time"

	"github.com/andersfylling/disgord"
	"golang.org/x/time/rate"
)

// bucketIdle is how long an unused user entry is kept.
const bucketIdle = 10 * time.Minute

// Bucket throttles command invocations per user.
type Bucket struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	users     map[disgord.Snowflake]*bucketEntry
	lastSweep time.Time

	// now is replaced in tests.
	now func() time.Time
}

type bucketEntry struct {
	limiter  *rate.Limiter
	notified bool
	seen     time.Time
}

// NewBucket allows perSecond invocations per user with bursts of up to burst.
func NewBucket(perSecond float64, burst int) *Bucket {
	if burst < 1 {
		burst = 1
	}
	return &Bucket{
		limit: rate.Limit(perSecond),
		burst: burst,
		users: map[disgord.Snowflake]*bucketEntry{},
		now:   time.Now,
	}
}

// Take uses one invocation of the user's allowance. When none is left it
// returns how long to wait and whether this is the first refused attempt since
// the user was last allowed through.
func (b *Bucket) Take(user disgord.Snowflake) (wait time.Duration, firstTry bool, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.sweep(now)

	e, exists := b.users[user]
	if !exists {
		e = &bucketEntry{limiter: rate.NewLimiter(b.limit, b.burst)}
		b.users[user] = e
	}
	e.seen = now

	res := e.limiter.ReserveN(now, 1)
	if !res.OK() {
		// A zero limit never refills.
		firstTry = !e.notified
		e.notified = true
		return time.Duration(1<<63 - 1), firstTry, false
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		firstTry = !e.notified
		e.notified = true
		return delay, firstTry, false
	}
	e.notified = false
	return 0, false, true
}

func (b *Bucket) sweep(now time.Time) {
	if now.Sub(b.lastSweep) < bucketIdle {
		return
	}
	b.lastSweep = now
	for id, e := range b.users {
		if now.Sub(e.seen) >= bucketIdle {
			delete(b.users, id)
		}
	}
}
