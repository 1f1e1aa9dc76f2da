package dto

// LeaderboardEntryDTO una posición del ranking. Achievement en porcentaje.
type LeaderboardEntryDTO struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	EmployeeID    string  `json:"employee_id"`
	Achievement   float64 `json:"achievement"`
	Cluster       string  `json:"cluster"`
	IsCurrentUser bool    `json:"isCurrentUser"`
}

// ClusterRankingDTO bucket de la vista agrupada por cluster.
type ClusterRankingDTO struct {
	Cluster  string                `json:"cluster"`
	Rankings []LeaderboardEntryDTO `json:"rankings"`
}

// LeaderboardResponse Rankings es []LeaderboardEntryDTO (city) o []ClusterRankingDTO (cluster, Grouped=true).
type LeaderboardResponse struct {
	Rankings any    `json:"rankings"`
	Period   string `json:"period"`
	Layer    string `json:"layer"`
	Grouped  bool   `json:"grouped"`
}
