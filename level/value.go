package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/MianHassanSohail/NumberSnake/prefabs"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrNoValue = errors.New("level: script does not define value")

// ValueInput carries the draws the generator made for one pickup. Roll and
// Pick are uniform in [0, 1).
type ValueInput struct {
	Index int
	Z     float64
	Roll  float64
	Pick  float64
}

// Valuer decides the signed value of a pickup.
type Valuer interface {
	Value(in ValueInput) (int, error)
}

// RangeValuer applies the configured ranges: negative with the configured
// chance and inclusive bounds, positive otherwise with an exclusive upper
// bound.
type RangeValuer struct {
	Positive       prefabs.RangeSpec
	Negative       prefabs.RangeSpec
	AllowNegative  bool
	NegativeChance float64
}

func NewRangeValuer(spec prefabs.LevelSpec) RangeValuer {
	return RangeValuer{
		Positive:       spec.PickupValues,
		Negative:       spec.NegativeValues,
		AllowNegative:  spec.AllowNegative,
		NegativeChance: spec.NegativeChance,
	}
}

func (r RangeValuer) Value(in ValueInput) (int, error) {
	if r.AllowNegative && in.Roll < r.NegativeChance {
		return pickInt(r.Negative.Min, r.Negative.Max+1, in.Pick), nil
	}
	return pickInt(r.Positive.Min, r.Positive.Max, in.Pick), nil
}

// pickInt maps a uniform draw onto [lo, hi).
func pickInt(lo, hi int, u float64) int {
	if hi <= lo {
		return lo
	}
	v := lo + int(math.Floor(u*float64(hi-lo)))
	if v >= hi {
		v = hi - 1
	}
	return v
}

// ScriptValuer runs a tengo script per pickup. The script sees index, z,
// roll and pick and must assign value. A ScriptValuer is not safe for
// concurrent use.
type ScriptValuer struct {
	name     string
	compiled *tengo.Compiled
}

// LoadScriptValuer compiles a script from prefabs/scripts.
func LoadScriptValuer(name string) (*ScriptValuer, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("level: load script %s: %w", name, err)
	}
	return NewScriptValuer(name, src)
}

func NewScriptValuer(name string, src []byte) (*ScriptValuer, error) {
	script := tengo.NewScript(src)
	_ = script.Add("index", 0)
	_ = script.Add("z", 0.0)
	_ = script.Add("roll", 0.0)
	_ = script.Add("pick", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("level: compile script %s: %w", name, err)
	}
	v := &ScriptValuer{name: name, compiled: compiled}
	// Globals stay undefined until the script runs once.
	if _, err := v.Value(ValueInput{}); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *ScriptValuer) Value(in ValueInput) (int, error) {
	vars := []struct {
		name  string
		value any
	}{
		{"index", in.Index},
		{"z", in.Z},
		{"roll", in.Roll},
		{"pick", in.Pick},
	}
	for _, v := range vars {
		if err := s.compiled.Set(v.name, v.value); err != nil {
			return 0, fmt.Errorf("level: script %s: set %s: %w", s.name, v.name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("level: script %s: %w", s.name, err)
	}
	if !s.compiled.IsDefined("value") {
		return 0, fmt.Errorf("level: script %s: %w", s.name, ErrNoValue)
	}
	return s.compiled.Get("value").Int(), nil
}
