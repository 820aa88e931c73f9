package event

import "testing"

func TestBusPendingAndNil(t *testing.T) {
	b := NewBus()
	b.Emit(Event{Kind: ScoreChanged, Value: 1})
	b.Emit(Event{Kind: ScoreChanged, Value: 2})
	if b.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", b.Pending())
	}
	var got []int
	b.Subscribe(ScoreChanged, func(e Event) { got = append(got, e.Value) })
	b.Dispatch()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected FIFO order, got %v", got)
	}

	// Buffers are reused across dispatches.
	b.Emit(Event{Kind: ScoreChanged, Value: 3})
	b.Dispatch()
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("expected third event after reuse, got %v", got)
	}

	var nilBus *Bus
	nilBus.Emit(Event{})
	nilBus.Subscribe(GameOver, func(Event) {})
	if nilBus.Dispatch() != 0 || nilBus.Pending() != 0 {
		t.Fatalf("nil bus must be inert")
	}
}

func TestBusDispatch(t *testing.T) {
	cases := []struct {
		name    string
		emit    []Event
		kind    Kind
		wantBy  int
		wantAll int
	}{
		{"none", nil, GameOver, 0, 0},
		{"matching", []Event{{Kind: GameOver}}, GameOver, 1, 1},
		{"mixed", []Event{{Kind: ScoreChanged, Value: 3}, {Kind: GameOver}, {Kind: ObstacleHit}}, GameOver, 1, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBus()
			byKind, all := 0, 0
			b.Subscribe(c.kind, func(Event) { byKind++ })
			b.SubscribeAll(func(Event) { all++ })

			for _, e := range c.emit {
				b.Emit(e)
			}
			if byKind != 0 {
				t.Fatalf("handlers must not run before Dispatch")
			}
			if n := b.Dispatch(); n != len(c.emit) {
				t.Fatalf("expected %d delivered, got %d", len(c.emit), n)
			}
			if byKind != c.wantBy || all != c.wantAll {
				t.Fatalf("expected byKind=%d all=%d, got %d/%d", c.wantBy, c.wantAll, byKind, all)
			}
			if b.Dispatch() != 0 {
				t.Fatalf("events must be delivered exactly once")
			}
		})
	}
}

func TestBusChainedEmit(t *testing.T) {
	b := NewBus()
	var order []Kind
	b.Subscribe(ObstacleHit, func(Event) { b.Emit(Event{Kind: ScoreChanged}) })
	b.SubscribeAll(func(e Event) { order = append(order, e.Kind) })

	b.Emit(Event{Kind: ObstacleHit})
	if n := b.Dispatch(); n != 2 {
		t.Fatalf("expected chained event delivered in same dispatch, got %d", n)
	}
	if len(order) != 2 || order[0] != ObstacleHit || order[1] != ScoreChanged {
		t.Fatalf("unexpected order %v", order)
	}
	if b.Pending() != 0 {
		t.Fatalf("expected empty bus")
	}
}
