package domain

// Phase is the discrete stage of the search state machine
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailed  Phase = "failed"
)

// SearchState is the widget's search state as seen by a presentation layer.
// Result is set only in PhaseSuccess and Error only in PhaseFailed.
type SearchState struct {
	Query  string          `json:"query"`
	Phase  Phase           `json:"phase"`
	Result *WeatherReading `json:"result,omitempty"`
	Error  *LookupError    `json:"error,omitempty"`
}

// Loading reports whether a lookup is in flight
func (s SearchState) Loading() bool {
	return s.Phase == PhaseLoading
}

// ShowWelcome reports whether the placeholder should be shown instead of a card or banner
func (s SearchState) ShowWelcome() bool {
	return s.Result == nil && s.Error == nil && !s.Loading()
}

// Clone returns a copy that shares no pointers with s
func (s SearchState) Clone() SearchState {
	out := s
	if s.Result != nil {
		r := *s.Result
		out.Result = &r
	}
	if s.Error != nil {
		e := *s.Error
		out.Error = &e
	}
	return out
}

// WidgetView aggregates everything a presentation layer renders
type WidgetView struct {
	Search      SearchState `json:"search"`
	Card        *Card       `json:"card,omitempty"`
	DarkMode    bool        `json:"dark_mode"`
	ShowWelcome bool        `json:"show_welcome"`
}

// NewWidgetView builds the view for a state snapshot and theme
func NewWidgetView(state SearchState, dark bool) WidgetView {
	v := WidgetView{
		Search:      state,
		DarkMode:    dark,
		ShowWelcome: state.ShowWelcome(),
	}
	if state.Result != nil {
		card := state.Result.Card()
		v.Card = &card
	}
	return v
}
