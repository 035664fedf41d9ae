package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/particle-background/internal/background"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func overlayText(st background.Stats, fps float64, uptime time.Duration) string {
	return fmt.Sprintf("FPS %.1f | particles %d | links %d\nticks %d (skipped %d) | %s\ndisplay %.0fx%.0f | backing %dx%d @%.2fx | up %s",
		fps, st.Particles, st.Links,
		st.Accepted, st.Skipped, st.State,
		st.Display[0], st.Display[1], st.Backing[0], st.Backing[1], st.Scale, formatDuration(uptime))
}
