package tui

type view int

const (
	viewHome view = iota
	viewAsk
	viewBrowse
)

func (v view) String() string {
	switch v {
	case viewAsk:
		return "ask"
	case viewBrowse:
		return "browse"
	default:
		return "home"
	}
}

type homeCard int

const (
	cardAsk homeCard = iota
	cardBrowse
)

type askFocus int

const (
	askFocusCategory askFocus = iota
	askFocusBody
	askFocusSubmit
	askFocusCount
)

type browseFocus int

const (
	browseFocusFilter browseFocus = iota
	browseFocusList
	browseFocusAnswer
)

const (
	heroTitle   = "Echo Room"
	heroTagline = "A safe, anonymous space for women to share career advice, ask questions, and support each other's professional growth."
)

const (
	minViewportWidth          = 40
	maxContentWidth           = 100
	viewportHorizontalPadding = 4
	inputBorderWidth          = 4
	minListHeight             = 6
)

const (
	askCategoryPlaceholder = "Select a category for your question"
	askBodyPlaceholder     = "Share your question here... Be as detailed as you'd like. Remember, this is completely anonymous."
	answerPlaceholder      = "Share your experience and advice anonymously..."
	filterPlaceholder      = "Filter by category"
)

// questionRef is a nullable question id.
type questionRef struct {
	id  int
	set bool
}

func someQuestion(id int) questionRef {
	return questionRef{id: id, set: true}
}

func (r questionRef) is(id int) bool {
	return r.set && r.id == id
}
