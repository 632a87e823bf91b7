package cookie_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/cookie"
)

// testClock is a manually advanced clock for expiry tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_ReadWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		writes []string
		want   string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:   "insertion order",
			writes: []string{"a=1; path=/", "b=2; path=/"},
			want:   "a=1; b=2",
		},
		{
			name:   "overwrite keeps position",
			writes: []string{"a=1; path=/", "b=2; path=/", "a=3; path=/"},
			want:   "a=3; b=2",
		},
		{
			name:   "missing path means root",
			writes: []string{"a=1", "a=2; path=/"},
			want:   "a=2",
		},
		{
			name:   "different paths coexist",
			writes: []string{"a=1; path=/", "a=2;path=/app"},
			want:   "a=2; a=1",
		},
		{
			name:   "longer paths first",
			writes: []string{"a=1; path=/", "b=2;path=/app/x", "c=3;path=/app", "d=4; path=/"},
			want:   "b=2; c=3; a=1; d=4",
		},
		{
			name:   "domain is case and dot insensitive",
			writes: []string{"a=1;domain=.Example.com", "a=2;domain=example.com"},
			want:   "a=2",
		},
		{
			name:   "attribute names are case insensitive",
			writes: []string{"a=1;Path=/app", "a=2;path=/app"},
			want:   "a=2",
		},
		{
			name:   "flags and unknown attributes are ignored",
			writes: []string{"a=1;secure;samesite=Lax;httponly"},
			want:   "a=1",
		},
		{
			name:   "writes without a name are ignored",
			writes: []string{"", "novalue", "=v", " =v; path=/", "a=1"},
			want:   "a=1",
		},
		{
			name:   "value keeps raw equals signs",
			writes: []string{"tok=abc==;path=/"},
			want:   "tok=abc==",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := cookie.NewMemoryStore()
			for _, w := range tt.writes {
				s.Write(w)
			}
			assert.Equal(t, tt.want, s.Read())
		})
	}
}

func TestMemoryStore_MoreSpecificPathWins(t *testing.T) {
	t.Parallel()
	acc := cookie.New(cookie.NewMemoryStore())

	require.NoError(t, acc.Set("n", "root", nil))
	require.NoError(t, acc.Set("n", "app", &cookie.Attributes{Path: "/app"}))

	got, err := acc.Get("n")
	require.NoError(t, err)
	assert.Equal(t, "app", got)
}

func TestMemoryStore_Expiry(t *testing.T) {
	t.Parallel()

	t.Run("past expires deletes", func(t *testing.T) {
		t.Parallel()
		s := cookie.NewMemoryStore()
		s.Write("a=1; path=/")
		s.Write("b=2; path=/")
		s.Write("a=;expires=" + cookie.ExpiredDate)
		assert.Equal(t, "b=2", s.Read())
		assert.Equal(t, 1, s.Len())
	})

	t.Run("past expires on unknown cookie is dropped", func(t *testing.T) {
		t.Parallel()
		s := cookie.NewMemoryStore()
		s.Write("a=1;expires=" + cookie.ExpiredDate)
		assert.Empty(t, s.Read())
		assert.Zero(t, s.Len())
	})

	t.Run("future expires lapses with time", func(t *testing.T) {
		t.Parallel()
		clock := newTestClock()
		s := cookie.NewMemoryStore(cookie.WithClock(clock.Now))

		s.Write("a=1;expires=" + clock.Now().Add(time.Hour).Format(http.TimeFormat))
		assert.Equal(t, "a=1", s.Read())

		clock.Advance(time.Hour)
		assert.Empty(t, s.Read())
		assert.Zero(t, s.Len())
	})

	t.Run("max-age", func(t *testing.T) {
		t.Parallel()
		clock := newTestClock()
		s := cookie.NewMemoryStore(cookie.WithClock(clock.Now))

		s.Write("a=1;max-age=60")
		s.Write("b=2;max-age=0")
		assert.Equal(t, "a=1", s.Read())

		clock.Advance(61 * time.Second)
		assert.Empty(t, s.Read())
	})

	t.Run("max-age wins over expires", func(t *testing.T) {
		t.Parallel()
		s := cookie.NewMemoryStore()
		s.Write("a=1;max-age=60;expires=" + cookie.ExpiredDate)
		s.Write("b=2;expires=" + cookie.ExpiredDate + ";max-age=60")
		assert.Equal(t, "a=1; b=2", s.Read())
	})

	t.Run("huge max-age is capped", func(t *testing.T) {
		t.Parallel()
		clock := newTestClock()
		s := cookie.NewMemoryStore(cookie.WithClock(clock.Now))

		s.Write("a=1;max-age=10000000000")
		s.Write("b=2;max-age=99999999999999999999")
		s.Write("c=3;expires=Fri, 31 Dec 9999 23:59:59 GMT")
		s.Write("d=4;max-age=-99999999999999999999")
		assert.Equal(t, "a=1; b=2; c=3", s.Read())

		acc := cookie.New(s)
		require.NoError(t, acc.Set("n", "v", &cookie.Attributes{
			Path:  "/",
			Extra: []cookie.Attribute{{Name: "max-age", Value: "10000000000"}},
		}))
		got, err := acc.Get("n")
		require.NoError(t, err)
		assert.Equal(t, "v", got)

		clock.Advance(399 * 24 * time.Hour)
		assert.Equal(t, "a=1; b=2; c=3; n=v", s.Read())

		clock.Advance(24 * time.Hour)
		assert.Empty(t, s.Read())
	})

	t.Run("invalid dates are session cookies", func(t *testing.T) {
		t.Parallel()
		s := cookie.NewMemoryStore()
		s.Write("a=1;expires=yesterday;max-age=soon")
		assert.Equal(t, "a=1", s.Read())
	})

	t.Run("nil clock is ignored", func(t *testing.T) {
		t.Parallel()
		s := cookie.NewMemoryStore(cookie.WithClock(nil))
		s.Write("a=1")
		assert.Equal(t, "a=1", s.Read())
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()
	acc := cookie.New(cookie.NewMemoryStore())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			assert.NoError(t, acc.Set(name, "v", nil))
			_, _ = acc.Get(name)
		}()
	}
	wg.Wait()

	for i := range 20 {
		got, err := acc.Get(string(rune('a' + i)))
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	}
}
