package study

import (
	"github.com/abhisek/flashdeck/internal/cardgen"
	"github.com/abhisek/flashdeck/internal/session"
)

// deckReadyMsg is sent when extraction and card generation finished.
type deckReadyMsg struct {
	Deck       []cardgen.Flashcard
	SourceName string
}

// uploadFailedMsg is sent when the upload flow aborted; the picker state
// is restored with the error shown.
type uploadFailedMsg struct {
	Err error
}

// autoAdvanceMsg fires after the post-response delay. The token is dropped
// by the controller when any other transition happened in the meantime.
type autoAdvanceMsg struct {
	Token session.AdvanceToken
}
