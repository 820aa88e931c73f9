package chain

import (
	"errors"
	"testing"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/trail"
)

type emptyHistory struct{}

func (emptyHistory) Position(int) (common.Vec3, bool) { return common.Vec3{}, false }

type fixedAnchor struct{ pos common.Vec3 }

func (a *fixedAnchor) Position() common.Vec3 { return a.pos }

func newTestManager(t *testing.T, mutate func(*Config)) (*Manager, *fixedAnchor) {
	t.Helper()
	cfg := Config{
		Spacing:          2,
		FollowSpeed:      1,
		PoolSize:         0,
		ContinuityOffset: 0.5,
		RemoveDuration:   0.5,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	anchor := &fixedAnchor{pos: common.Vec3{Z: 10}}
	m, err := NewManager(cfg, anchor, nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m, anchor
}

func assertInvariant(t *testing.T, m *Manager) {
	t.Helper()
	for i, v := range m.Values() {
		if want := m.Head() - 1 - i; v != want {
			t.Fatalf("value[%d] = %d, want %d (head %d, values %v)", i, v, want, m.Head(), m.Values())
		}
	}
}

func assertValues(t *testing.T, m *Manager, want []int) {
	t.Helper()
	got := m.Values()
	if len(got) != len(want) {
		t.Fatalf("expected values %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected values %v, got %v", want, got)
		}
	}
}

func TestNewManagerValidates(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero_spacing", func(c *Config) { c.Spacing = 0 }, ErrInvalidSpacing},
		{"negative_speed", func(c *Config) { c.FollowSpeed = -1 }, ErrInvalidFollowSpeed},
		{"negative_pool", func(c *Config) { c.PoolSize = -3 }, ErrInvalidPoolSize},
		{"zero_remove", func(c *Config) { c.RemoveDuration = 0 }, ErrInvalidRemoveDuration},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			if _, err := NewManager(cfg, AnchorFunc(func() common.Vec3 { return common.Vec3{} }), nil); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
	if _, err := NewManager(DefaultConfig(), nil, nil); !errors.Is(err, ErrNilAnchor) {
		t.Fatalf("expected ErrNilAnchor, got %v", err)
	}
}

func TestAddNumbersAtLeader(t *testing.T) {
	m, anchor := newTestManager(t, nil)
	m.AddNumbers(3, 4)

	assertValues(t, m, []int{3, 2, 1})
	for _, f := range m.Followers() {
		if f.Pos != anchor.pos {
			t.Fatalf("expected follower at leader %+v, got %+v", anchor.pos, f.Pos)
		}
		if !f.Active() || f.Scale != 1 {
			t.Fatalf("expected active follower at scale 1")
		}
	}

	m.AddNumbers(1, 5)
	assertValues(t, m, []int{4, 3, 2, 1})
	assertInvariant(t, m)
}

func TestRebuildStampsEveryLength(t *testing.T) {
	for l := 0; l < 8; l++ {
		m, _ := newTestManager(t, nil)
		m.Rebuild(l+1, emptyHistory{})
		if m.Len() != l {
			t.Fatalf("setup: expected length %d, got %d", l, m.Len())
		}

		m.Rebuild(l+2, emptyHistory{})
		if m.Len() != l+1 {
			t.Fatalf("expected length %d, got %d", l+1, m.Len())
		}
		for i, v := range m.Values() {
			if want := (l + 1) - 1 - i + 1; v != want {
				t.Fatalf("l=%d: value[%d] = %d, want %d", l, i, v, want)
			}
		}
		assertInvariant(t, m)
	}
}

func TestRebuildClampsBelowZero(t *testing.T) {
	m, _ := newTestManager(t, nil)
	m.Rebuild(4, emptyHistory{})
	for _, v := range []int{0, -5} {
		m.Rebuild(v, emptyHistory{})
		if m.Len() != 0 {
			t.Fatalf("Rebuild(%d): expected empty chain, got %d", v, m.Len())
		}
	}
	created, available := m.PoolStats()
	if created != 3 || available != 3 {
		t.Fatalf("expected 3 created and 3 available, got %d/%d", created, available)
	}
}

func TestGrowShrinkRoundTrip(t *testing.T) {
	m, _ := newTestManager(t, nil)
	m.AddNumbers(3, 3)
	assertValues(t, m, []int{2, 1, 0})

	before := m.Followers()

	m.Rebuild(1, emptyHistory{})
	if m.Len() != 0 {
		t.Fatalf("expected shrink to 0, got %d", m.Len())
	}
	created, available := m.PoolStats()
	if created != 3 || available != 3 {
		t.Fatalf("expected exactly 3 instances returned, created=%d available=%d", created, available)
	}
	for _, f := range before {
		if f.Active() {
			t.Fatalf("returned follower still active")
		}
	}

	m.Rebuild(4, emptyHistory{})
	assertValues(t, m, []int{3, 2, 1})
	assertInvariant(t, m)
	created, available = m.PoolStats()
	if created != 3 || available != 0 {
		t.Fatalf("expected regrowth from the pool, created=%d available=%d", created, available)
	}
	reused := make(map[*Follower]bool)
	for _, f := range before {
		reused[f] = true
	}
	for _, f := range m.Followers() {
		if !reused[f] {
			t.Fatalf("expected pooled followers to be reused")
		}
	}
}

func TestRebuildSameCountRestamps(t *testing.T) {
	m, _ := newTestManager(t, nil)
	m.AddNumbers(2, 9)
	assertValues(t, m, []int{8, 7})

	m.Rebuild(3, emptyHistory{})
	assertValues(t, m, []int{2, 1})
	assertInvariant(t, m)
}

func TestRebuildPlacementFallbacks(t *testing.T) {
	t.Run("no_history", func(t *testing.T) {
		m, _ := newTestManager(t, nil)
		m.Rebuild(4, emptyHistory{})

		got := m.Followers()
		wantZ := []float64{9.5, 9.0, 8.5}
		for i, f := range got {
			if f.Pos.Z != wantZ[i] {
				t.Fatalf("follower %d: expected z=%v, got %v", i, wantZ[i], f.Pos.Z)
			}
		}
	})

	t.Run("partial_history", func(t *testing.T) {
		m, _ := newTestManager(t, nil)
		rec, _ := trail.NewRecorder(16)
		for i := 0; i < 3; i++ {
			rec.Record(common.Vec3{X: 1, Z: float64(i)})
		}

		m.Rebuild(3, rec)
		got := m.Followers()
		if got[0].Pos != (common.Vec3{X: 1, Z: 0}) {
			t.Fatalf("expected first follower on recorded path, got %+v", got[0].Pos)
		}
		if want := (common.Vec3{X: 1, Z: -0.5}); got[1].Pos != want {
			t.Fatalf("expected second follower behind the tail %+v, got %+v", want, got[1].Pos)
		}
	})
}

func TestUpdateChainSamplesSpacedHistory(t *testing.T) {
	const spacing = 3
	m, _ := newTestManager(t, func(c *Config) { c.Spacing = spacing })
	rec, _ := trail.NewRecorder(64)

	m.AddNumbers(3, 4)
	leaderAt := func(tick int) common.Vec3 { return common.Vec3{X: float64(tick % 5), Z: float64(tick)} }

	const ticks = 40
	for tick := 0; tick < ticks; tick++ {
		rec.Record(leaderAt(tick))
		m.UpdateChain(rec, 1)
	}

	last := ticks - 1
	for i, f := range m.Followers() {
		want := leaderAt(last - (i+1)*spacing)
		if f.Pos != want {
			t.Fatalf("follower %d: expected leader position from %d ticks ago %+v, got %+v",
				i, (i+1)*spacing, want, f.Pos)
		}
	}
}

func TestUpdateChainHoldsWithoutHistory(t *testing.T) {
	m, anchor := newTestManager(t, func(c *Config) { c.Spacing = 4 })
	rec, _ := trail.NewRecorder(32)
	m.AddNumbers(2, 3)

	for i := 0; i < 6; i++ {
		rec.Record(common.Vec3{Z: 20 + float64(i)})
	}
	m.UpdateChain(rec, 0.5)

	got := m.Followers()
	if got[0].Pos.Z == anchor.pos.Z {
		t.Fatalf("expected first follower to move toward its sample")
	}
	if want := common.LerpVec3(anchor.pos, common.Vec3{Z: 21}, 0.5); got[0].Pos != want {
		t.Fatalf("expected partial lerp %+v, got %+v", want, got[0].Pos)
	}
	if got[1].Pos != anchor.pos {
		t.Fatalf("expected second follower to hold without history, got %+v", got[1].Pos)
	}
}

func TestRemoveLastDefersPoolReturn(t *testing.T) {
	m, _ := newTestManager(t, nil)
	m.AddNumbers(2, 3)
	tail := m.Followers()[1]

	if !m.RemoveLast() {
		t.Fatalf("expected removal")
	}
	assertValues(t, m, []int{2})
	if !m.Removing() || m.PendingRemovals() != 1 {
		t.Fatalf("expected removal in flight")
	}
	if len(m.Detached()) != 1 || m.Detached()[0] != tail {
		t.Fatalf("expected tail to be detached")
	}

	m.Rebuild(3, emptyHistory{})
	if m.Followers()[1] == tail {
		t.Fatalf("shrinking follower must not be reused before its animation ends")
	}

	m.AdvanceRemovals(0.25)
	if tail.Scale != 0.5 {
		t.Fatalf("expected half scale mid-animation, got %v", tail.Scale)
	}
	if !tail.Active() {
		t.Fatalf("follower returned to pool too early")
	}

	m.AdvanceRemovals(0.25)
	if m.Removing() {
		t.Fatalf("expected removal finished")
	}
	if tail.Active() || tail.Scale != 1 {
		t.Fatalf("expected follower back in pool at base scale, active=%v scale=%v", tail.Active(), tail.Scale)
	}
	_, available := m.PoolStats()
	if available != 1 {
		t.Fatalf("expected one available follower, got %d", available)
	}
}

func TestOverlappingRemovalsRunIndependently(t *testing.T) {
	m, _ := newTestManager(t, nil)
	m.AddNumbers(3, 4)

	m.RemoveLast()
	m.AdvanceRemovals(0.25)
	m.RemoveLast()
	if m.PendingRemovals() != 2 {
		t.Fatalf("expected two removals in flight, got %d", m.PendingRemovals())
	}

	m.AdvanceRemovals(0.25)
	if m.PendingRemovals() != 1 {
		t.Fatalf("expected first removal finished, got %d pending", m.PendingRemovals())
	}
	m.AdvanceRemovals(0.25)
	if m.Removing() {
		t.Fatalf("expected both removals finished")
	}
	assertValues(t, m, []int{3})

	m.Clear()
	if m.RemoveLast() {
		t.Fatalf("RemoveLast on empty chain must report false")
	}
}

func TestClearBypassesAnimation(t *testing.T) {
	m, _ := newTestManager(t, nil)
	m.AddNumbers(4, 5)
	m.RemoveLast()

	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("expected empty chain after Clear")
	}
	created, available := m.PoolStats()
	if created != 4 || available != 3 {
		t.Fatalf("expected 3 returned immediately, created=%d available=%d", created, available)
	}

	m.AdvanceRemovals(1)
	_, available = m.PoolStats()
	if available != 4 {
		t.Fatalf("expected in-flight removal to return on completion, available=%d", available)
	}
}
