package themepref

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dbi/internal/store"
)

// fakePalette records the last operation applied to it.
type fakePalette struct {
	dark  bool
	calls int
}

func (p *fakePalette) SetOverrides()   { p.dark = true; p.calls++ }
func (p *fakePalette) ClearOverrides() { p.dark = false; p.calls++ }

func stored(t *testing.T, kv store.KV) (string, bool) {
	t.Helper()
	v, err := kv.Get(context.Background(), PreferenceKey)
	if errors.Is(err, store.ErrNotFound) {
		return "", false
	}
	require.NoError(t, err)
	return v, true
}

func TestResolveEffective(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		persisted  string
		systemDark bool
		want       Theme
	}{
		{"nothing persisted, light system", "", false, Light},
		{"nothing persisted, dark system", "", true, Dark},
		{"persisted light beats dark system", "light", true, Light},
		{"persisted dark beats light system", "dark", false, Dark},
		{"garbage persisted falls back to system", "sepia", true, Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemory()
			if tt.persisted != "" {
				require.NoError(t, kv.Set(ctx, PreferenceKey, tt.persisted))
			}
			m := NewManager(kv, nil, tt.systemDark)
			assert.Equal(t, tt.want, m.ResolveEffective(ctx))
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	p := &fakePalette{}
	m := NewManager(store.NewMemory(), p, false)

	m.Apply(Dark)
	m.Apply(Dark)
	assert.True(t, p.dark)
	assert.Equal(t, Dark, m.Effective())

	m.Apply(Light)
	m.Apply(Light)
	assert.False(t, p.dark)
	assert.Equal(t, Light, m.Effective())
}

func TestControlShowsOtherTheme(t *testing.T) {
	m := NewManager(store.NewMemory(), nil, false)

	m.Apply(Dark)
	assert.Equal(t, Control{Icon: "☀️", Title: "Włącz jasny motyw"}, m.Control())

	m.Apply(Light)
	assert.Equal(t, Control{Icon: "🌙", Title: "Włącz ciemny motyw"}, m.Control())
}

func TestToggleTwicePersistsEachTime(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	p := &fakePalette{}
	m := NewManager(kv, p, false)
	start := m.Load(ctx)
	require.Equal(t, Light, start)

	n, err := m.Toggle(ctx)
	require.NoError(t, err)
	v, ok := stored(t, kv)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.Equal(t, Dark, m.Effective())
	assert.True(t, p.dark)
	assert.Equal(t, "🌙 Włączono ciemny motyw", n.Text)

	n, err = m.Toggle(ctx)
	require.NoError(t, err)
	v, ok = stored(t, kv)
	require.True(t, ok)
	assert.Equal(t, "light", v, "second toggle must persist explicitly too")
	assert.Equal(t, start, m.Effective())
	assert.Equal(t, "☀️ Włączono jasny motyw", n.Text)
}

func TestToggleRelativeToPersistedNotSystem(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	m := NewManager(kv, nil, true)
	require.Equal(t, Dark, m.Load(ctx))

	// Nothing persisted, so the flip is from the light default even though
	// the page is showing dark.
	_, err := m.Toggle(ctx)
	require.NoError(t, err)
	v, _ := stored(t, kv)
	assert.Equal(t, "dark", v)
	assert.Equal(t, Dark, m.Effective())
}

func TestResetToSystemDefault(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	m := NewManager(kv, nil, true)

	_, err := m.Toggle(ctx)
	require.NoError(t, err)
	_, err = m.Toggle(ctx)
	require.NoError(t, err)
	require.Equal(t, Light, m.Effective())

	require.NoError(t, m.ResetToSystemDefault(ctx))
	_, ok := stored(t, kv)
	assert.False(t, ok, "reset must clear the persisted value")
	assert.Equal(t, Dark, m.Effective())
	assert.Equal(t, Dark, m.ResolveEffective(ctx))

	// Back in automatic mode: system changes apply again.
	assert.True(t, m.SystemChanged(ctx, false))
	assert.Equal(t, Light, m.Effective())
}

func TestSystemChangeIgnoredOncePersisted(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	m := NewManager(kv, nil, false)
	m.Load(ctx)

	assert.True(t, m.SystemChanged(ctx, true))
	assert.Equal(t, Dark, m.Effective())

	_, err := m.Toggle(ctx) // persists dark
	require.NoError(t, err)

	assert.False(t, m.SystemChanged(ctx, false))
	assert.Equal(t, Dark, m.Effective())
	assert.False(t, m.SystemDark())
}

func TestNotificationExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory(), nil, false)

	first, err := m.Toggle(ctx)
	require.NoError(t, err)
	second, err := m.Toggle(ctx)
	require.NoError(t, err)

	// The first notification's timer fires after it was replaced.
	m.Expire(first.Seq)
	got, ok := m.Notification()
	require.True(t, ok)
	assert.Equal(t, second.Seq, got.Seq)

	m.Expire(second.Seq)
	_, ok = m.Notification()
	assert.False(t, ok)
}

type brokenKV struct{ *store.Memory }

func (brokenKV) Set(context.Context, string, string) error { return errors.New("read-only") }

func TestToggleStorageFailureStillApplies(t *testing.T) {
	m := NewManager(brokenKV{store.NewMemory()}, nil, false)
	_, err := m.Toggle(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Dark, m.Effective())
}

func TestParse(t *testing.T) {
	th, err := Parse("dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, th)

	_, err = Parse("Dark")
	assert.ErrorIs(t, err, ErrInvalidTheme)
}
