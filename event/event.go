package event

import "github.com/MianHassanSohail/NumberSnake/common"

// Kind identifies a gameplay event.
type Kind string

const (
	NumberCollected Kind = "number_collected"
	ObstacleHit     Kind = "obstacle_hit"
	ScoreChanged    Kind = "score_changed"
	ChainChanged    Kind = "chain_changed"
	GameOver        Kind = "game_over"
	LevelComplete   Kind = "level_complete"
)

// Event is a gameplay event payload. Value carries the collected amount or
// the head value depending on Kind; Pos is where it happened.
type Event struct {
	Kind  Kind
	Value int
	Pos   common.Vec3
}

// Emitter is the only capability gameplay code needs to raise events.
type Emitter interface {
	Emit(evt Event)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(evt Event)

func (f EmitterFunc) Emit(evt Event) {
	f(evt)
}

// Discard drops every event.
var Discard Emitter = EmitterFunc(func(Event) {})
