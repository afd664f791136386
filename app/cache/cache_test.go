package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setClock(c *Cache[string], at time.Time) {
	c.now = func() time.Time { return at }
}

func TestGetAfterSet(t *testing.T) {
	c := New[string]()
	c.Set("team-sen", "payload")

	v, ok := c.Get("team-sen")
	assert.True(t, ok)
	assert.Equal(t, "payload", v)
}

func TestGetMissing(t *testing.T) {
	c := New[string]()

	_, ok := c.Get("nothing")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	start := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	type Test struct {
		elapsed time.Duration
		expOk   bool
	}
	tests := []Test{
		{elapsed: 0, expOk: true},
		{elapsed: time.Minute * 14, expOk: true},
		{elapsed: time.Minute * 15, expOk: false},
		{elapsed: time.Hour, expOk: false},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			c := New[string]()
			setClock(c, start)
			c.SetTTL("k", "v", time.Minute*15)

			setClock(c, start.Add(test.elapsed))
			_, ok := c.Get("k")
			assert.Equal(t, test.expOk, ok)
		})
	}
}

func TestExpiredEntryIsEvicted(t *testing.T) {
	start := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	c := New[string]()
	setClock(c, start)
	c.SetTTL("k", "v", time.Second)

	setClock(c, start.Add(time.Minute))
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestSetOverwritesValueAndExpiry(t *testing.T) {
	start := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	c := New[string]()
	setClock(c, start)
	c.SetTTL("k", "old", time.Minute)

	setClock(c, start.Add(time.Second*30))
	c.SetTTL("k", "new", time.Minute)

	// past the first expiry but within the second
	setClock(c, start.Add(time.Second * 80))
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}
