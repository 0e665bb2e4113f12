package dto

type TimerOutput struct {
	Phase      string
	PhaseLabel string
	Running    bool
	Remaining  int // seconds
	PhaseTotal int // full phase length in seconds
	Clock      string
	Sessions   int
	// Message is set on phase completion: the phase line plus, when a
	// goal was credited, its updated progress line.
	Message string
}

type DayStatsOutput struct {
	Day      string
	Sessions int
}
