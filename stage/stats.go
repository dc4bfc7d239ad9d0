package stage

import (
	"log/slog"
	"time"
)

// statsWindow is the number of frames averaged per debug log line.
const statsWindow = 60

// frameStats accumulates per-frame timings. Only logged in debug mode.
type frameStats struct {
	frames     int
	updateTime time.Duration
	drawTime   time.Duration
	draws      int
}

func (st *frameStats) addUpdate(d time.Duration) {
	st.frames++
	st.updateTime += d
}

func (st *frameStats) addDraw(d time.Duration) {
	st.draws++
	st.drawTime += d
}

func (st *frameStats) reset() {
	*st = frameStats{}
}

func avg(total time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}

// logStats writes one line per statsWindow updates: mean update and draw
// time, live timers and registered regions.
func (s *Stage) logStats() {
	if !s.cfg.Debug || s.stats.frames < statsWindow {
		return
	}
	attrs := []any{
		slog.Duration("update", avg(s.stats.updateTime, s.stats.frames)),
		slog.Duration("draw", avg(s.stats.drawTime, s.stats.draws)),
		slog.Int("timers", s.cfg.Clock.Pending()),
		slog.Uint64("frame", s.frame),
	}
	if s.cfg.Router != nil {
		attrs = append(attrs, slog.Int("regions", s.cfg.Router.Regions()))
	}
	s.log.Debug("frame stats", attrs...)
	s.stats.reset()
}
