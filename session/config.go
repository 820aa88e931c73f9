package session

import (
	"fmt"

	"github.com/MianHassanSohail/NumberSnake/chain"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
)

// Config is everything a session needs, resolved for one platform.
type Config struct {
	Platform    prefabs.Platform
	Movement    prefabs.MovementSpec
	Chain       chain.Config
	HistorySize int
	StartValue  int
	Level       prefabs.LevelSpec
	Effects     prefabs.EffectsSpec
}

// NewConfig resolves the yaml config for a platform. The platform only
// changes chain spacing, which stays fixed until the next restart.
func NewConfig(gc *prefabs.GameConfig, platform prefabs.Platform) (Config, error) {
	spacing, err := gc.Spacing(platform)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Platform: platform,
		Movement: gc.Movement,
		Chain: chain.Config{
			Spacing:          spacing,
			FollowSpeed:      gc.Chain.FollowSpeed,
			PoolSize:         gc.Chain.PoolSize,
			ContinuityOffset: gc.Chain.ContinuityOffset,
			RemoveDuration:   gc.Chain.RemoveDuration,
		},
		HistorySize: gc.Chain.MaxPathHistory,
		StartValue:  gc.Chain.StartValue,
		Level:       gc.Level,
		Effects:     gc.Effects,
	}
	if err := cfg.Chain.Validate(); err != nil {
		return Config{}, fmt.Errorf("session: %w", err)
	}
	return cfg, nil
}
