package entity

import "github.com/shopspring/decimal"

// Capas del leaderboard.
const (
	LayerCity    = "city"
	LayerCluster = "cluster"
)

// Segmentos de periodo del leaderboard.
const (
	SegmentDay  = "day"
	SegmentWeek = "week"
)

// LeaderboardEntry fila de leaderboard unida con el nombre y cluster del directorio.
type LeaderboardEntry struct {
	EmployeeID  string
	Name        string
	Cluster     string
	LayerValue  string
	Rank        int
	Achievement decimal.NullDecimal // fracción 0..1
}
