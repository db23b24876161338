package clip

import (
	"log"

	"github.com/atotto/clipboard"

	"github.com/stake-plus/stockdesk/src/notify"
)

// Copier writes text to the system clipboard and reports the outcome as a
// toast either way.
type Copier struct {
	Toasts *notify.Center
}

// Copy returns whether the write succeeded.
func (c Copier) Copy(text string) bool {
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("clip: write: %v", err)
		if c.Toasts != nil {
			c.Toasts.Push(notify.SeverityError, "Failed to copy to clipboard")
		}
		return false
	}
	if c.Toasts != nil {
		c.Toasts.Push(notify.SeveritySuccess, "Copied to clipboard")
	}
	return true
}
