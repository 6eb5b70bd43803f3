package registry

import (
	"testing"

	"github.com/cosmic-cipher/cryptocore/engine"
	"github.com/cosmic-cipher/cryptocore/primitive"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	id, err := engine.NewUser()
	require.NoError(t, err)
	return engine.New(id, primitive.DefaultArgon2Params(), nil)
}

func TestRegisterAndGet(t *testing.T) {
	r := New()
	e := newTestEngine(t)

	require.NoError(t, r.Register("alice", e))
	got, err := r.Get("alice")
	require.NoError(t, err)
	require.Same(t, e, got)
}

func TestRegisterDuplicateFails(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("alice", newTestEngine(t)))

	err := r.Register("alice", newTestEngine(t))
	require.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestGetMissingFails(t *testing.T) {
	r := New()
	_, err := r.Get("nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveAndLabels(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("alice", newTestEngine(t)))
	require.NoError(t, r.Register("bob", newTestEngine(t)))

	require.ElementsMatch(t, []string{"alice", "bob"}, r.Labels())

	r.Remove("alice")
	require.ElementsMatch(t, []string{"bob"}, r.Labels())

	r.Remove("alice") // no-op
}
