package chain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSpacing        = errors.New("chain: spacing must be positive")
	ErrInvalidFollowSpeed    = errors.New("chain: follow speed must be positive")
	ErrInvalidPoolSize       = errors.New("chain: pool size must not be negative")
	ErrInvalidRemoveDuration = errors.New("chain: remove duration must be positive")
	ErrNilAnchor             = errors.New("chain: anchor is nil")
)

// Config is fixed for the lifetime of a Manager.
type Config struct {
	// Spacing is the number of recorded ticks between consecutive followers.
	Spacing int
	// FollowSpeed scales how far a follower closes on its target per second.
	FollowSpeed float64
	// PoolSize is the number of followers created up front.
	PoolSize int
	// ContinuityOffset is how far behind an existing member a new follower is
	// placed when the recorded path is too short.
	ContinuityOffset float64
	// RemoveDuration is the length in seconds of the tail shrink animation.
	RemoveDuration float64
}

func DefaultConfig() Config {
	return Config{
		Spacing:          15,
		FollowSpeed:      15,
		PoolSize:         20,
		ContinuityOffset: 0.5,
		RemoveDuration:   0.2,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Spacing <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidSpacing, c.Spacing)
	case c.FollowSpeed <= 0:
		return fmt.Errorf("%w: got %v", ErrInvalidFollowSpeed, c.FollowSpeed)
	case c.PoolSize < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidPoolSize, c.PoolSize)
	case c.RemoveDuration <= 0:
		return fmt.Errorf("%w: got %v", ErrInvalidRemoveDuration, c.RemoveDuration)
	}
	return nil
}
