package state

import (
	"testing"

	"luminax_client/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameUser(a, b *model.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestStore_DispatchUpdatesSnapshot(t *testing.T) {
	store := NewStore(Initial())
	next := store.Dispatch(SetSearchQuery{Query: "rust"})

	assert.Equal(t, "rust", next.SearchQuery)
	assert.Equal(t, "rust", store.State().SearchQuery)
	assert.Equal(t, uint64(1), store.Version())
}

func TestStore_ObserversRunInOrder(t *testing.T) {
	store := NewStore(Initial())
	var calls []string
	store.Subscribe(func(prev, next State, a Action) { calls = append(calls, "a:"+a.Name()) })
	store.Subscribe(func(prev, next State, a Action) { calls = append(calls, "b:"+a.Name()) })

	store.Dispatch(ToggleDarkMode{})
	store.Dispatch(ClearCart{})

	assert.Equal(t, []string{"a:TOGGLE_DARK_MODE", "b:TOGGLE_DARK_MODE", "a:CLEAR_CART", "b:CLEAR_CART"}, calls)
}

func TestStore_Unsubscribe(t *testing.T) {
	store := NewStore(Initial())
	count := 0
	cancel := store.Subscribe(func(prev, next State, a Action) { count++ })

	store.Dispatch(ToggleDarkMode{})
	cancel()
	cancel()
	store.Dispatch(ToggleDarkMode{})

	assert.Equal(t, 1, count)
}

func TestWatch_FiresOncePerChange(t *testing.T) {
	store := NewStore(Initial())
	var seen []bool
	Watch(store, func(s State) bool { return s.DarkMode }, func(a, b bool) bool { return a == b }, func(v bool) {
		seen = append(seen, v)
	})

	store.Dispatch(ToggleDarkMode{})
	store.Dispatch(SetSearchQuery{Query: "x"})
	store.Dispatch(ToggleDarkMode{})

	assert.Equal(t, []bool{true, false}, seen)
}

func TestWatch_UserSlice(t *testing.T) {
	store := NewStore(Initial())
	var seen []*model.User
	Watch(store, func(s State) *model.User { return s.User }, sameUser, func(u *model.User) {
		seen = append(seen, u)
	})

	u := testUser("u1")
	store.Dispatch(SetUser{User: u})
	store.Dispatch(SetUser{User: testUser("u1")})
	store.Dispatch(SetUser{User: nil})

	require.Len(t, seen, 2)
	assert.Equal(t, "u1", seen[0].ID)
	assert.Nil(t, seen[1])
}

func TestStore_ObserverCanReadState(t *testing.T) {
	store := NewStore(Initial())
	var observed string
	store.Subscribe(func(prev, next State, a Action) { observed = store.State().SearchQuery })

	store.Dispatch(SetSearchQuery{Query: "go"})
	assert.Equal(t, "go", observed)
}
