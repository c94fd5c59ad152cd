package engine

// ActionKind enumerates the eight card actions. Dispatch is a single
// switch in Game.Apply, so adding a kind without a handler is a compile
// visibility concern rather than a runtime lookup failure.
type ActionKind int

const (
	WindFire ActionKind = iota
	DozerLine
	ScratchLine
	DeReforest
	FlareUp
	BurningSnag
	Explosion
	Ember
)

// Orientation is the placement axis for multi-cell actions.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ActionInfo describes one action for menus and the CLI catalog.
type ActionInfo struct {
	Kind        ActionKind
	Name        string
	Oriented    bool // re-selecting flips the placement orientation
	Description string
}

var actionInfos = []ActionInfo{
	{WindFire, "Wind fire", false,
		"Spread fire to a tree whose upwind neighbor is already burning."},
	{DozerLine, "Dozer line", true,
		"Place two firebreak tokens adjacent to each other. Neither may be adjacent to any other firebreak."},
	{ScratchLine, "Scratch line", true,
		"Place two firebreak tokens one space apart, either horizontally or vertically."},
	{DeReforest, "De/re-forest", false,
		"Add or remove one firebreak token."},
	{FlareUp, "Flare up", true,
		"Place three fire gems in a line. At least one must be orthogonal to existing fire; a firebreak cuts the line short."},
	{BurningSnag, "Burning snag", false,
		"Place four fire gems in a square with the target as its upper-left corner."},
	{Explosion, "Explosion", false,
		"Convert an existing fire gem to a firebreak. All eight surrounding tiles catch fire if possible."},
	{Ember, "Ember", false,
		"Lift any fire gem off the board, then place it on a space orthogonal to existing fire."},
}

// Actions returns the catalog of all eight actions in kind order.
func Actions() []ActionInfo {
	out := make([]ActionInfo, len(actionInfos))
	copy(out, actionInfos)
	return out
}

// Info returns the catalog entry for k.
func (k ActionKind) Info() ActionInfo {
	return actionInfos[k]
}

// Oriented reports whether re-selecting this action flips orientation.
func (k ActionKind) Oriented() bool {
	return actionInfos[k].Oriented
}

// String returns the action name.
func (k ActionKind) String() string {
	if int(k) < 0 || int(k) >= len(actionInfos) {
		return "unknown"
	}
	return actionInfos[k].Name
}

// Outcome reports what Apply did with a command. Rejections are normal
// gameplay, not errors: the board is untouched and the caller may try
// another coordinate immediately.
type Outcome struct {
	Accepted bool
	Reason   string // empty when accepted
	// EmberLifted is set when an ember phase-one move succeeded and the
	// engine now awaits the placement.
	EmberLifted bool
	// Ended is set when this command decided the game.
	Ended bool
}

func accepted() Outcome {
	return Outcome{Accepted: true}
}

func rejected(reason string) Outcome {
	return Outcome{Reason: reason}
}
