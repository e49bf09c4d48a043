package cinder

import "time"

// Mutations transform an in-flight projectile when a trigger condition is
// met: a magic missile turning into a fireball at half range, a stone
// growing as it falls. Each configured mutation fires at most once per
// projectile instance regardless of tick rate.

// TriggerKind identifies the condition a mutation waits for.
type TriggerKind uint8

const (
	// TriggerProgress fires when flight progress reaches Value (0–1).
	TriggerProgress TriggerKind = iota
	// TriggerDistance fires when the Euclidean distance travelled from the
	// spawn position reaches Value map units.
	TriggerDistance
	// TriggerTime fires when elapsed flight time reaches Value seconds.
	TriggerTime
	// TriggerPosition fires when the projectile comes within Threshold units
	// of Position.
	TriggerPosition
)

// DefaultPositionThreshold is the radius used by position triggers that
// leave Threshold at zero.
const DefaultPositionThreshold = 5.0

// Trigger gates a mutation. Build values with the *Trigger constructors.
type Trigger struct {
	Kind      TriggerKind
	Value     float64
	Position  Point
	Threshold float64
}

// ProgressTrigger fires at the given flight progress in [0, 1].
func ProgressTrigger(progress float64) Trigger {
	return Trigger{Kind: TriggerProgress, Value: progress}
}

// DistanceTrigger fires after the given distance travelled from spawn.
func DistanceTrigger(units float64) Trigger {
	return Trigger{Kind: TriggerDistance, Value: units}
}

// TimeTrigger fires after the given elapsed flight time.
func TimeTrigger(d time.Duration) Trigger {
	return Trigger{Kind: TriggerTime, Value: d.Seconds()}
}

// PositionTrigger fires within threshold units of target. A non-positive
// threshold uses DefaultPositionThreshold.
func PositionTrigger(target Point, threshold float64) Trigger {
	return Trigger{Kind: TriggerPosition, Position: target, Threshold: threshold}
}

// Mutation describes a trigger-gated change to a projectile's visual state.
// Only non-nil fields are applied; the rest of the state is left alone.
type Mutation struct {
	Trigger Trigger
	Shape   *Shape
	Color   *Color
	Size    *float64
	// Effects replaces the projectile's active effect tag set when non-nil.
	Effects []string
	// TransitionDuration smooths the visual switch. Zero applies instantly.
	TransitionDuration time.Duration
}

// ProjectileState is the mutable per-instance record a projectile updates
// once per tick. It is owned exclusively by one projectile and discarded
// when the instance completes.
type ProjectileState struct {
	Position         Point
	Progress         float64
	Elapsed          float64 // seconds in flight
	DistanceTraveled float64
	Shape            Shape
	Color            Color
	Size             float64
	Effects          []string
	applied          map[int]struct{}
}

// Applied reports whether the mutation at index has already fired.
func (s *ProjectileState) Applied(index int) bool {
	_, ok := s.applied[index]
	return ok
}

// AppliedCount returns the number of mutations fired so far.
func (s *ProjectileState) AppliedCount() int { return len(s.applied) }

// EvaluateTrigger reports whether a trigger condition holds for the current
// state. startPosition is the projectile's spawn point, used by distance
// triggers.
func EvaluateTrigger(tr Trigger, state *ProjectileState, startPosition Point) bool {
	switch tr.Kind {
	case TriggerProgress:
		return state.Progress >= tr.Value
	case TriggerDistance:
		return Distance(startPosition, state.Position) >= tr.Value
	case TriggerTime:
		return state.Elapsed >= tr.Value
	case TriggerPosition:
		threshold := tr.Threshold
		if threshold <= 0 {
			threshold = DefaultPositionThreshold
		}
		return Distance(state.Position, tr.Position) <= threshold
	}
	return false
}

// ApplyMutation overwrites the state fields the mutation carries, in place.
func ApplyMutation(m Mutation, state *ProjectileState) {
	if m.Shape != nil {
		state.Shape = *m.Shape
	}
	if m.Color != nil {
		state.Color = *m.Color
	}
	if m.Size != nil {
		state.Size = *m.Size
	}
	if m.Effects != nil {
		state.Effects = append(state.Effects[:0], m.Effects...)
	}
}

// ProcessMutations evaluates every configured mutation against the state,
// applies those whose trigger now holds, and returns the indices applied this
// call. Mutations already applied on a previous tick are skipped, so each
// fires exactly once per projectile instance.
func ProcessMutations(mutations []Mutation, state *ProjectileState, startPosition Point) []int {
	var fired []int
	for i, m := range mutations {
		if state.Applied(i) {
			continue
		}
		if !EvaluateTrigger(m.Trigger, state, startPosition) {
			continue
		}
		if state.applied == nil {
			state.applied = make(map[int]struct{})
		}
		state.applied[i] = struct{}{}
		ApplyMutation(m, state)
		fired = append(fired, i)
	}
	return fired
}
