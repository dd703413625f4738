package bounds

// Phase selects which boundary sequence a Confirm event records into.
type Phase int

const (
	CollectingLeft Phase = iota
	CollectingRight
)

func (p Phase) String() string {
	if p == CollectingRight {
		return "right"
	}
	return "left"
}

// Event is a logical input decoded from a key press.
type Event int

const (
	Confirm Event = iota
	Undo
	NextPhase
)

// EffectKind tells the caller what a Handle call actually did.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectAddedLeft
	EffectAddedRight
	EffectRemovedLeft
	EffectRemovedRight
	EffectPhaseSwitched
	// EffectComplete means the confirming sample was added to the right
	// bounds and both sequences now have equal length.
	EffectComplete
)

// Effect describes the outcome of one event. Value carries the sample that
// was added or removed, when one was.
type Effect struct {
	Kind  EffectKind
	Value float64
}

// Session holds the state of one calibration run. Left bounds are collected
// left-to-right and appended at the tail; right bounds are collected
// right-to-left and inserted at the head, so both sequences end up
// index-aligned left-to-right. Fraction is the live pointer position as a
// fraction of the window width, overwritten on every motion event.
type Session struct {
	Phase    Phase
	Left     []float64
	Right    []float64
	Fraction float64
}

// Handle applies one event and returns the next session state together with
// an effect the caller can log or react to. The phase only ever advances
// forward, and the right sequence never grows past the left one.
func (s Session) Handle(e Event) (Session, Effect) {
	switch e {
	case Confirm:
		if s.Phase == CollectingLeft {
			s.Left = append(s.Left, s.Fraction)
			return s, Effect{Kind: EffectAddedLeft, Value: s.Fraction}
		}
		if len(s.Right) >= len(s.Left) {
			return s, Effect{}
		}
		s.Right = append([]float64{s.Fraction}, s.Right...)
		if len(s.Right) == len(s.Left) {
			return s, Effect{Kind: EffectComplete, Value: s.Fraction}
		}
		return s, Effect{Kind: EffectAddedRight, Value: s.Fraction}

	case Undo:
		if s.Phase == CollectingLeft {
			if len(s.Left) == 0 {
				return s, Effect{}
			}
			v := s.Left[len(s.Left)-1]
			s.Left = s.Left[:len(s.Left)-1]
			return s, Effect{Kind: EffectRemovedLeft, Value: v}
		}
		if len(s.Right) == 0 {
			return s, Effect{}
		}
		// Most recent right sample sits at the head.
		v := s.Right[0]
		s.Right = s.Right[1:]
		return s, Effect{Kind: EffectRemovedRight, Value: v}

	case NextPhase:
		if s.Phase != CollectingLeft {
			return s, Effect{}
		}
		s.Phase = CollectingRight
		return s, Effect{Kind: EffectPhaseSwitched}
	}
	return s, Effect{}
}
