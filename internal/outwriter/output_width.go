package outwriter

import (
	"os"

	"github.com/huangsam/gpscore/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for practice names in table output
// based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Code + Score + Label with borders/padding
	baseWidth := 35
	if cfg.Detail {
		baseWidth += 40 // ICB + PCN + Max + Percent
	}
	if cfg.Explain {
		baseWidth += 45
	}
	baseWidth += 15 // Separators and padding

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
