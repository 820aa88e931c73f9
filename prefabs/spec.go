package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const ConfigFile = "game.yaml"

// Platform selects the per-target tuning, mirroring the editor and mobile
// builds of the game.
type Platform string

const (
	PlatformEditor Platform = "editor"
	PlatformMobile Platform = "mobile"
)

var (
	ErrInvalidConfig   = errors.New("prefabs: invalid config")
	ErrUnknownPlatform = errors.New("prefabs: unknown platform")
)

// LoadSpec decodes a prefab yaml on top of base, so keys the file omits
// keep their base values.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return base, nil
}

// LoadGameConfig loads and validates game.yaml.
func LoadGameConfig() (*GameConfig, error) {
	cfg, err := LoadSpec(ConfigFile, *DefaultGameConfig())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", ConfigFile, err)
	}
	return &cfg, nil
}

// LoadGameConfigFile loads and validates a config from an explicit path.
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig decodes yaml on top of the defaults and validates it.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type GameConfig struct {
	Name     string       `yaml:"name"`
	Movement MovementSpec `yaml:"movement"`
	Controls ControlsSpec `yaml:"controls"`
	Chain    ChainSpec    `yaml:"chain"`
	Level    LevelSpec    `yaml:"level"`
	Visuals  VisualsSpec  `yaml:"visuals"`
	Effects  EffectsSpec  `yaml:"effects"`
}

type MovementSpec struct {
	ForwardSpeed     float64 `yaml:"forward_speed"`
	HorizontalSpeed  float64 `yaml:"horizontal_speed"`
	HorizontalBounds float64 `yaml:"horizontal_bounds"`
	PlatformWidth    float64 `yaml:"platform_width"`
}

type ControlsSpec struct {
	Scheme            string  `yaml:"scheme"`
	MobileSensitivity float64 `yaml:"mobile_sensitivity"`
	EditorSensitivity float64 `yaml:"editor_sensitivity"`
	TouchSensitivity  float64 `yaml:"touch_sensitivity"`
	KeyboardStep      float64 `yaml:"keyboard_step"`
}

type ChainSpec struct {
	EditorSpacing    float64 `yaml:"editor_spacing"`
	MobileSpacing    float64 `yaml:"mobile_spacing"`
	MaxPathHistory   int     `yaml:"max_path_history"`
	FollowSpeed      float64 `yaml:"follow_speed"`
	PoolSize         int     `yaml:"pool_size"`
	ContinuityOffset float64 `yaml:"continuity_offset"`
	RemoveDuration   float64 `yaml:"remove_duration"`
	StartValue       int     `yaml:"start_value"`
}

type RangeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type LevelSpec struct {
	Length          float64   `yaml:"length"`
	PickupStart     float64   `yaml:"pickup_start"`
	PickupSpacing   float64   `yaml:"pickup_spacing"`
	ObstacleStart   float64   `yaml:"obstacle_start"`
	ObstacleSpacing float64   `yaml:"obstacle_spacing"`
	LaneWidth       float64   `yaml:"lane_width"`
	MinDistance     float64   `yaml:"min_distance"`
	PickupValues    RangeSpec `yaml:"pickup_values"`
	AllowNegative   bool      `yaml:"allow_negative"`
	NegativeValues  RangeSpec `yaml:"negative_values"`
	NegativeChance  float64   `yaml:"negative_chance"`
	ValueScript     string    `yaml:"value_script"`
	TriggerRadius   float64   `yaml:"trigger_radius"`
	Layout          string    `yaml:"layout"`
}

type VisualsSpec struct {
	PickupRotationSpeed float64    `yaml:"pickup_rotation_speed"`
	PickupBobSpeed      float64    `yaml:"pickup_bob_speed"`
	PickupBobHeight     float64    `yaml:"pickup_bob_height"`
	ObstaclePulseSpeed  float64    `yaml:"obstacle_pulse_speed"`
	ObstaclePulseAmount float64    `yaml:"obstacle_pulse_amount"`
	PixelsPerUnit       float64    `yaml:"pixels_per_unit"`
	Positive            *YAMLColor `yaml:"positive_color"`
	Negative            *YAMLColor `yaml:"negative_color"`
	Leader              *YAMLColor `yaml:"leader_color"`
	Follower            *YAMLColor `yaml:"follower_color"`
	Obstacle            *YAMLColor `yaml:"obstacle_color"`
}

type ShakeSpec struct {
	Duration  float64 `yaml:"duration"`
	Magnitude float64 `yaml:"magnitude"`
}

type PunchSpec struct {
	Duration float64 `yaml:"duration"`
	Scale    float64 `yaml:"scale"`
}

type EffectsSpec struct {
	ParticlePoolSize int       `yaml:"particle_pool_size"`
	CollectDuration  float64   `yaml:"collect_duration"`
	HitDuration      float64   `yaml:"hit_duration"`
	ObstacleShake    ShakeSpec `yaml:"obstacle_shake"`
	NegativeShake    ShakeSpec `yaml:"negative_shake"`
	GainPunch        PunchSpec `yaml:"gain_punch"`
	LossPunch        PunchSpec `yaml:"loss_punch"`
	HitPunch         PunchSpec `yaml:"hit_punch"`
}

// DefaultGameConfig returns the tuning shipped with the game.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name: "runner",
		Movement: MovementSpec{
			ForwardSpeed:     5,
			HorizontalSpeed:  10,
			HorizontalBounds: 3,
			PlatformWidth:    6,
		},
		Controls: ControlsSpec{
			Scheme:            "touch",
			MobileSensitivity: 0.1,
			EditorSensitivity: 0.02,
			TouchSensitivity:  1.5,
			KeyboardStep:      0.15,
		},
		Chain: ChainSpec{
			EditorSpacing:    1.5,
			MobileSpacing:    0.5,
			MaxPathHistory:   200,
			FollowSpeed:      15,
			PoolSize:         20,
			ContinuityOffset: 0.5,
			RemoveDuration:   0.2,
			StartValue:       1,
		},
		Level: LevelSpec{
			Length:          100,
			PickupStart:     10,
			PickupSpacing:   10,
			ObstacleStart:   20,
			ObstacleSpacing: 15,
			LaneWidth:       2,
			MinDistance:     1.5,
			PickupValues:    RangeSpec{Min: 2, Max: 6},
			AllowNegative:   true,
			NegativeValues:  RangeSpec{Min: -3, Max: -1},
			NegativeChance:  0.3,
			TriggerRadius:   0.5,
		},
		Visuals: VisualsSpec{
			PickupRotationSpeed: 50,
			PickupBobSpeed:      2,
			PickupBobHeight:     0.3,
			ObstaclePulseSpeed:  2,
			ObstaclePulseAmount: 0.1,
			PixelsPerUnit:       48,
		},
		Effects: EffectsSpec{
			ParticlePoolSize: 10,
			CollectDuration:  0.5,
			HitDuration:      0.6,
			ObstacleShake:    ShakeSpec{Duration: 0.4, Magnitude: 0.25},
			NegativeShake:    ShakeSpec{Duration: 0.3, Magnitude: 0.15},
			GainPunch:        PunchSpec{Duration: 0.3, Scale: 1.8},
			LossPunch:        PunchSpec{Duration: 0.3, Scale: 1.5},
			HitPunch:         PunchSpec{Duration: 0.25, Scale: 1.3},
		},
	}
}

// Validate rejects configurations the simulation cannot run with. It is
// called once when the config is loaded.
func (c *GameConfig) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Chain.MaxPathHistory > 0, "chain.max_path_history must be positive, got %d", c.Chain.MaxPathHistory)
	check(spacingSteps(c.Chain.EditorSpacing) > 0, "chain.editor_spacing must round to at least one step, got %v", c.Chain.EditorSpacing)
	check(spacingSteps(c.Chain.MobileSpacing) > 0, "chain.mobile_spacing must round to at least one step, got %v", c.Chain.MobileSpacing)
	check(c.Chain.FollowSpeed > 0, "chain.follow_speed must be positive, got %v", c.Chain.FollowSpeed)
	check(c.Chain.PoolSize >= 0, "chain.pool_size must not be negative, got %d", c.Chain.PoolSize)
	check(c.Chain.RemoveDuration > 0, "chain.remove_duration must be positive, got %v", c.Chain.RemoveDuration)
	check(c.Chain.StartValue > 0, "chain.start_value must be positive, got %d", c.Chain.StartValue)
	check(c.Movement.HorizontalBounds >= 0, "movement.horizontal_bounds must not be negative")
	check(c.Level.Length > 0, "level.length must be positive, got %v", c.Level.Length)
	check(c.Level.PickupSpacing > 0, "level.pickup_spacing must be positive, got %v", c.Level.PickupSpacing)
	check(c.Level.ObstacleSpacing > 0, "level.obstacle_spacing must be positive, got %v", c.Level.ObstacleSpacing)
	check(c.Level.PickupValues.Min < c.Level.PickupValues.Max, "level.pickup_values min must be below max")
	check(c.Level.NegativeValues.Min <= c.Level.NegativeValues.Max, "level.negative_values min must not exceed max")
	check(c.Level.NegativeChance >= 0 && c.Level.NegativeChance <= 1, "level.negative_chance must be within [0, 1]")
	check(c.Effects.ParticlePoolSize >= 0, "effects.particle_pool_size must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Spacing returns the chain spacing in recorded ticks for a platform.
func (c *GameConfig) Spacing(p Platform) (int, error) {
	switch p {
	case PlatformEditor, "":
		return spacingSteps(c.Chain.EditorSpacing), nil
	case PlatformMobile:
		return spacingSteps(c.Chain.MobileSpacing), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, p)
}

// Sensitivity returns the drag sensitivity for a platform.
func (c ControlsSpec) Sensitivity(p Platform) float64 {
	if p == PlatformMobile {
		return c.MobileSensitivity
	}
	return c.EditorSensitivity
}

func spacingSteps(spacing float64) int {
	return int(math.Round(spacing * 10))
}

// Or returns the configured color, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
