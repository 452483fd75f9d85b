package dialog

// FragmentKind discriminates rendered answer fragments.
type FragmentKind string

const (
	// FragmentText is a plain text fragment.
	FragmentText FragmentKind = "text"
	// FragmentImage is a reference to an image path.
	FragmentImage FragmentKind = "image"
	// FragmentPending is the interim placeholder shown while a remote
	// query is in flight.
	FragmentPending FragmentKind = "pending"
)

// Fragment is one rendered piece of an answer. Content holds the text to
// display, or the resolved image path for FragmentImage.
type Fragment struct {
	Kind    FragmentKind
	Content string
}

// Presenter is the presentation boundary. The dialog core pushes output
// through it and never reads anything back; implementations decide how
// transcript lines, the current-question display, and answer fragments
// appear on screen.
type Presenter interface {
	// AppendMessage appends a chat transcript line tagged with a sender.
	AppendMessage(sender, text string)

	// ShowQuestion sets the current-question display.
	ShowQuestion(text string)

	// ClearOutput clears the current-question display and the answer area.
	ClearOutput()

	// AppendFragment appends an answer fragment to the answer area.
	AppendFragment(f Fragment)
}
