package world

// Interaction targeting: once per tick, find the nearest environment object
// and drive the prompt state machine for it. The scan is a plain linear pass
// over the catalog — the catalog is small and static, so no spatial index.

// PromptState is the interaction prompt's current phase.
type PromptState byte

const (
	// PromptNone — nothing in notice range.
	PromptNone PromptState = iota
	// PromptNoticed — a target is highlighted but out of interact range.
	PromptNoticed
	// PromptActive — the target is close enough to interact with.
	PromptActive
)

func (s PromptState) String() string {
	switch s {
	case PromptNone:
		return "none"
	case PromptNoticed:
		return "noticed"
	case PromptActive:
		return "active"
	default:
		return "unknown"
	}
}

// Targeter tracks one player's interaction target and prompt state.
// Accessed only from the game loop goroutine.
type Targeter struct {
	interactRange float64
	noticeRange   float64

	state  PromptState
	target EnvObject
}

func NewTargeter(interactRange, noticeRange float64) *Targeter {
	if noticeRange < interactRange {
		noticeRange = interactRange
	}
	return &Targeter{interactRange: interactRange, noticeRange: noticeRange}
}

// State returns the current prompt state.
func (t *Targeter) State() PromptState { return t.state }

// Target returns the current target, or nil when state is PromptNone.
func (t *Targeter) Target() EnvObject { return t.target }

// Update rescans the catalog against the player's position and advances the
// state machine. Returns true when the prompt state or the target changed and
// the client needs a new prompt frame.
func (t *Targeter) Update(px, pz float64, objects []EnvObject) bool {
	var nearest EnvObject
	var nearestSq float64

	noticeSq := t.noticeRange * t.noticeRange
	for _, obj := range objects {
		ox, oz := obj.Position()
		dx := ox - px
		dz := oz - pz
		sq := dx*dx + dz*dz
		if sq > noticeSq {
			continue
		}
		if nearest == nil || sq < nearestSq {
			nearest = obj
			nearestSq = sq
		}
	}

	newState := PromptNone
	if nearest != nil {
		if nearestSq <= t.interactRange*t.interactRange {
			newState = PromptActive
		} else {
			newState = PromptNoticed
		}
	}

	changed := newState != t.state || nearest != t.target
	t.state = newState
	t.target = nearest
	return changed
}

// Interactable returns the current target if the prompt is active, else nil.
// Handlers call this when the client sends an interact request, so a stale
// request (player already walked away) resolves to nil rather than acting at
// a distance.
func (t *Targeter) Interactable() EnvObject {
	if t.state != PromptActive {
		return nil
	}
	return t.target
}

// Reset drops the current target, forcing a fresh prompt on the next Update.
func (t *Targeter) Reset() {
	t.state = PromptNone
	t.target = nil
}
