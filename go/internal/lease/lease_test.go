package lease

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestAcquireIsExclusivePerKey(t *testing.T) {
	l := NewMemory()

	assert.True(t, l.Acquire("comp-1", time.Minute))
	assert.False(t, l.Acquire("comp-1", time.Minute))

	// Other keys are independent.
	assert.True(t, l.Acquire("comp-2", time.Minute))
}

func TestReleaseFreesTheKey(t *testing.T) {
	l := NewMemory()

	assert.True(t, l.Acquire("comp-1", time.Minute))
	l.Release("comp-1")
	assert.True(t, l.Acquire("comp-1", time.Minute))
}

func TestReleaseOfUnheldKeyIsNoop(t *testing.T) {
	l := NewMemory()
	l.Release("never-held")
	assert.True(t, l.Acquire("never-held", time.Minute))
}

func TestExpiredLeaseIsReacquirable(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewMemoryWithClock(clock)

	assert.True(t, l.Acquire("comp-1", time.Minute))

	clock.Advance(59 * time.Second)
	assert.False(t, l.Acquire("comp-1", time.Minute), "lease still live before TTL")

	clock.Advance(2 * time.Second)
	assert.True(t, l.Acquire("comp-1", time.Minute), "lease lapsed after TTL")
}
