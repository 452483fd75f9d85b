package dialog

// Transcript sender labels.
const (
	SenderBot  = "CineBot"
	SenderUser = "Ik"
)

// Fixed bot responses.
const (
	MsgGreeting   = "Hallo."
	MsgNoMatch    = "Sorry, deze vraag ken ik niet."
	MsgHandOff    = "Alsjeblieft."
	MsgHelpIntro  = "Dit zijn de vragen die ik kan beantwoorden:"
	MsgFetching   = "Antwoord wordt opgehaald..."
	MsgFetchError = "Error: Het is niet gelukt om te verbinden met de database"
)

// HelpDivider frames the help listing in the transcript.
const HelpDivider = "--------------------------------------"

// helpCommand is the literal command word that triggers the help listing.
const helpCommand = "help"

// greetings is the fixed set of greeting words. Membership is checked
// against the whole normalized input, not per token, so "hallo daar" is
// not a greeting.
var greetings = map[string]bool{
	"hey":         true,
	"hallo":       true,
	"hello":       true,
	"hoi":         true,
	"goedemiddag": true,
	"goededag":    true,
}
