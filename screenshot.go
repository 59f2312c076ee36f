package mindweaver

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ScreenshotPath returns the file path for a labeled screenshot taken at t:
// dir/YYYYMMDD_HHMMSS_label.png. A sequence number greater than zero is
// appended to keep several shots from the same second apart.
func ScreenshotPath(dir, label string, t time.Time, seq int) string {
	name := fmt.Sprintf("%s_%s", t.Format("20060102_150405"), sanitizeLabel(label))
	if seq > 0 {
		name = fmt.Sprintf("%s_%d", name, seq)
	}
	return filepath.Join(dir, name+".png")
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
