package screen

import (
	"errors"
	"fmt"

	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/atotto/clipboard"
)

// resultLine is the text copied to the clipboard after a session ends.
func resultLine(e *game.Engine) string {
	return fmt.Sprintf("Kitten Dodge: scored %d, struck in lane %d after %d frames",
		e.DisplayScore(), e.Player().Column, e.Frame())
}

func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this system")
	}
	return clipboard.WriteAll(text)
}
