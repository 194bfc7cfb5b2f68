package progress

// State is the semantic mode of the button.
type State string

const (
	StateIdle     State = "idle"
	StateProgress State = "progress"
	StateComplete State = "complete"
	StateError    State = "error"
)

// Reserved progress values.
const (
	ErrorProgress   = -1
	IdleProgress    = 0
	SuccessProgress = 100
)

// Class is the target a requested progress value maps to.
type Class string

const (
	ClassNone     Class = "none"
	ClassSuccess  Class = "success"
	ClassError    Class = "error"
	ClassIdle     Class = "idle"
	ClassProgress Class = "progress"
)

// Classify maps a requested progress value onto a class.
// Values below -1 have no class and are ignored.
func Classify(value, maxProgress int) Class {
	switch {
	case value == SuccessProgress || value >= maxProgress:
		return ClassSuccess
	case value == ErrorProgress:
		return ClassError
	case value == IdleProgress:
		return ClassIdle
	case value > IdleProgress:
		return ClassProgress
	default:
		return ClassNone
	}
}

// Action is what the machine does for a request.
type Action int

const (
	// ActionNone means the button is already where the request points.
	ActionNone Action = iota
	// ActionIgnore marks a transition the table does not allow.
	ActionIgnore
	// ActionRedraw repaints the determinate arc without changing state.
	ActionRedraw
	// ActionMorph runs the recipe and changes state when it completes.
	ActionMorph
)

func (action Action) String() string {
	switch action {
	case ActionNone:
		return "none"
	case ActionIgnore:
		return "ignore"
	case ActionRedraw:
		return "redraw"
	case ActionMorph:
		return "morph"
	default:
		return "unknown"
	}
}

// Recipe names one morph between two states.
type Recipe struct {
	From State
	To   State
}

// Name returns the recipe label used in logs and morph runs.
func (recipe Recipe) Name() string {
	return string(recipe.From) + "->" + string(recipe.To)
}

// Decision is the table entry for a state and a class.
type Decision struct {
	Action Action
	Recipe Recipe
}

// Decide looks up the transition table.
//
//	from \ to   SUCCESS    ERROR      IDLE       PROGRESS
//	IDLE        complete   error      -          progress
//	PROGRESS    complete   error      idle       redraw
//	COMPLETE    -          ignored    idle       ignored
//	ERROR       complete   -          idle       ignored
func Decide(state State, class Class) Decision {
	target, action := lookup(state, class)
	if action != ActionMorph {
		return Decision{Action: action}
	}
	return Decision{Action: ActionMorph, Recipe: Recipe{From: state, To: target}}
}

func lookup(state State, class Class) (State, Action) {
	if class == ClassNone {
		return state, ActionNone
	}
	switch state {
	case StateIdle:
		switch class {
		case ClassSuccess:
			return StateComplete, ActionMorph
		case ClassError:
			return StateError, ActionMorph
		case ClassProgress:
			return StateProgress, ActionMorph
		}
	case StateProgress:
		switch class {
		case ClassSuccess:
			return StateComplete, ActionMorph
		case ClassError:
			return StateError, ActionMorph
		case ClassIdle:
			return StateIdle, ActionMorph
		case ClassProgress:
			return state, ActionRedraw
		}
	case StateComplete:
		switch class {
		case ClassIdle:
			return StateIdle, ActionMorph
		case ClassError, ClassProgress:
			return state, ActionIgnore
		}
	case StateError:
		switch class {
		case ClassSuccess:
			return StateComplete, ActionMorph
		case ClassIdle:
			return StateIdle, ActionMorph
		case ClassProgress:
			return state, ActionIgnore
		}
	}
	return state, ActionNone
}
