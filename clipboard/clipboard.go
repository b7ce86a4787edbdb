package clipboard

import (
	atotto "github.com/atotto/clipboard"

	"github.com/andareed/siftly-wave/logging"
)

// Copy puts text on the system clipboard. The native clipboard is tried
// first; when it is unavailable (no display, missing helper binaries) the
// OSC52 escape sequence is used so copies still work over ssh.
func Copy(text string) error {
	if !atotto.Unsupported {
		err := atotto.WriteAll(text)
		if err == nil {
			logging.Debug("clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("clipboard: system copy failed, trying OSC52: %v", err)
	}
	return copyOSC52(text)
}
