package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/huangsam/gpscore/internal/contract"
)

// headerOut is where run headers go. Headers stay off stdout so that piped
// CSV and JSON remain parseable.
var headerOut io.Writer = os.Stderr

// logScoreHeader prints a concise, 2-line header for a scoring run.
func logScoreHeader(cfg *contract.Config) {
	icb := cfg.ICB
	if icb == "" {
		icb = "all"
	}
	_, _ = fmt.Fprintf(headerOut, "%sDataset: %s (ICB: %s)\n", prefix(cfg, "🔎 "), filepath.Base(cfg.DatasetPath), icb)
	showing := "all"
	if cfg.ResultLimit > 0 {
		showing = fmt.Sprintf("top %d", cfg.ResultLimit)
	}
	_, _ = fmt.Fprintf(headerOut, "%sMetrics: %d active, showing %s\n", prefix(cfg, "📐 "), len(cfg.Metrics), showing)
}

// logLookupHeader prints a one-line header for a name lookup run.
func logLookupHeader(cfg *contract.Config, codes int) {
	_, _ = fmt.Fprintf(headerOut, "%sLooking up %d codes at %s\n", prefix(cfg, "🌐 "), codes, cfg.ODSBaseURL)
}

// prefix returns emoji when emojis are enabled and nothing otherwise.
func prefix(cfg *contract.Config, emoji string) string {
	if cfg.UseEmojis {
		return emoji
	}
	return ""
}
