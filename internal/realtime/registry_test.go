package realtime

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu     sync.Mutex
	full   bool
	events []Envelope
}

func (f *fakeConn) Push(event string, data any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.full {
		return false
	}
	f.events = append(f.events, Envelope{Event: event, Data: data})
	return true
}

func (f *fakeConn) pushed() []Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Envelope, len(f.events))
	copy(out, f.events)
	return out
}

func Test_Registry(t *testing.T) {
	t.Run("multiple sessions per user", func(t *testing.T) {
		r := NewRegistry()
		userID := uuid.New()

		laptop := &fakeConn{}
		phone := &fakeConn{}
		r.Register(userID, laptop)
		r.Register(userID, phone)

		assert.True(t, r.Online(userID))
		assert.Len(t, r.Sessions(userID), 2)
		assert.Equal(t, 2, r.Len())
	})

	t.Run("register is idempotent per session", func(t *testing.T) {
		r := NewRegistry()
		userID := uuid.New()
		c := &fakeConn{}

		r.Register(userID, c)
		r.Register(userID, c)

		assert.Len(t, r.Sessions(userID), 1)
	})

	t.Run("unregister removes only the one session", func(t *testing.T) {
		r := NewRegistry()
		userID := uuid.New()
		laptop := &fakeConn{}
		phone := &fakeConn{}
		r.Register(userID, laptop)
		r.Register(userID, phone)

		r.Unregister(userID, laptop)

		require.True(t, r.Online(userID), "user stays online through the other session")
		sessions := r.Sessions(userID)
		require.Len(t, sessions, 1)
		assert.Same(t, phone, sessions[0].(*fakeConn))
	})

	t.Run("last unregister takes the user offline", func(t *testing.T) {
		r := NewRegistry()
		userID := uuid.New()
		c := &fakeConn{}
		r.Register(userID, c)

		r.Unregister(userID, c)

		assert.False(t, r.Online(userID))
		assert.Nil(t, r.Sessions(userID))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("unregister of unknown session is a no-op", func(t *testing.T) {
		r := NewRegistry()
		userID := uuid.New()
		r.Register(userID, &fakeConn{})

		r.Unregister(userID, &fakeConn{})
		r.Unregister(uuid.New(), &fakeConn{})

		assert.Equal(t, 1, r.Len())
	})

	t.Run("concurrent register and lookup", func(t *testing.T) {
		r := NewRegistry()
		userID := uuid.New()

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				r.Register(userID, &fakeConn{})
			}()
			go func() {
				defer wg.Done()
				r.Online(userID)
				r.Sessions(userID)
			}()
		}
		wg.Wait()

		assert.Equal(t, 16, r.Len())
	})
}
