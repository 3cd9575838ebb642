package errhandler

import (
	"os"
	"unicode"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/model"
	"github.com/pterm/pterm"
)

const ExitFailure = 1

// Message turns err into the line shown to the user. Load failures and an
// impossible balance get their own lead-in.
func Message(err error) string {
	switch model.KindOf(err) {
	case model.KindIO, model.KindParse:
		return "Failed to load account: " + err.Error()
	case model.KindNegativeBalance:
		return "Impossible balance: " + err.Error()
	default:
		return capitalize(err.Error())
	}
}

// HandleError reports err on stderr and terminates the process. Every error
// reaching it is fatal.
func HandleError(err error) {
	pterm.Error.WithWriter(os.Stderr).Println(Message(err))
	os.Exit(ExitFailure)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
