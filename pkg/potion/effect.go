package potion

import (
	"fmt"
	"math"
	"time"

	"go.minekube.com/alchemy/pkg/util/errs"
)

const (
	// TicksPerSecond is the game simulation rate effect durations are counted in.
	TicksPerSecond = 20
	// MaxAmplifier is the largest amplifier storable in an item tag.
	MaxAmplifier = 255
	// MaxDuration is the longest duration in ticks storable in an item tag.
	MaxDuration = math.MaxInt32
)

// Effect is a potion effect: an effect type applied at an amplifier
// for a duration in ticks.
type Effect struct {
	Type      *EffectType
	Duration  int  // In ticks.
	Amplifier int  // 0 is level I.
	Ambient   bool // Beacon-like, with translucent particles.
	Particles bool // Whether particles are shown.
	Icon      bool // Whether the HUD icon is shown.
}

// NewEffect returns an effect with particles and icon shown.
func NewEffect(t *EffectType, duration, amplifier int) Effect {
	return Effect{
		Type:      t,
		Duration:  duration,
		Amplifier: amplifier,
		Particles: true,
		Icon:      true,
	}
}

// Validate returns an ErrInvalidArgument error if e cannot be stored.
func (e Effect) Validate() error {
	if e.Type == nil {
		return errs.InvalidArgument("effect type must not be nil")
	}
	if e.Type.Key == nil {
		return errs.InvalidArgument("effect type %d must have a key", e.Type.ID)
	}
	if e.Type.ID <= 0 || e.Type.ID > MaxID {
		return errs.InvalidArgument("effect %s id %d out of range 1-%d", e.Type, e.Type.ID, MaxID)
	}
	if e.Duration < 0 || e.Duration > MaxDuration {
		return errs.InvalidArgument("effect %s duration %d out of range 0-%d", e.Type, e.Duration, MaxDuration)
	}
	if e.Amplifier < 0 || e.Amplifier > MaxAmplifier {
		return errs.InvalidArgument("effect %s amplifier %d out of range 0-%d", e.Type, e.Amplifier, MaxAmplifier)
	}
	return nil
}

// WithDuration returns a copy of e with the duration in ticks replaced.
func (e Effect) WithDuration(ticks int) Effect {
	e.Duration = ticks
	return e
}

// WithAmplifier returns a copy of e with the amplifier replaced.
func (e Effect) WithAmplifier(amplifier int) Effect {
	e.Amplifier = amplifier
	return e
}

// WithAmbient returns a copy of e with the ambient flag replaced.
func (e Effect) WithAmbient(ambient bool) Effect {
	e.Ambient = ambient
	return e
}

// WithParticles returns a copy of e with the particles flag replaced.
func (e Effect) WithParticles(particles bool) Effect {
	e.Particles = particles
	return e
}

// WithIcon returns a copy of e with the icon flag replaced.
func (e Effect) WithIcon(icon bool) Effect {
	e.Icon = icon
	return e
}

// Level returns the 1-based effect level.
func (e Effect) Level() int { return e.Amplifier + 1 }

// DurationTime converts the tick duration to wall-clock time.
func (e Effect) DurationTime() time.Duration {
	return time.Duration(e.Duration) * time.Second / TicksPerSecond
}

// Equal reports whether e and o have the same type and attributes.
func (e Effect) Equal(o Effect) bool {
	return e.Type.Is(o.Type) &&
		e.Duration == o.Duration &&
		e.Amplifier == o.Amplifier &&
		e.Ambient == o.Ambient &&
		e.Particles == o.Particles &&
		e.Icon == o.Icon
}

func (e Effect) String() string {
	if e.Type != nil && e.Type.Instant {
		return fmt.Sprintf("%s x%d", e.Type, e.Level())
	}
	return fmt.Sprintf("%s x%d (%s)", e.Type, e.Level(), FormatTicks(e.Duration))
}

// Ticks converts a wall-clock duration to ticks, rounding down.
func Ticks(d time.Duration) int {
	return int(d * TicksPerSecond / time.Second)
}

// FormatTicks formats a tick duration as m:ss like item tooltips do.
// Durations of an hour or more are rendered as h:mm:ss.
func FormatTicks(ticks int) string {
	secs := ticks / TicksPerSecond
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
