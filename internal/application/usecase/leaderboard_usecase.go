package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/application/ports"
	"github.com/jhoicas/SalesExec-api/internal/domain"
	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

const unknownCluster = "Unknown"

var hundred = decimal.NewFromInt(100)

// LeaderboardUseCase ranking precalculado por periodo y capa.
// La cache guarda solo las filas; isCurrentUser y la agrupación se calculan por petición.
type LeaderboardUseCase struct {
	repo  repository.LeaderboardRepository
	cache ports.Cache
	ttl   time.Duration
}

// NewLeaderboardUseCase cache nil equivale a sin cache.
func NewLeaderboardUseCase(repo repository.LeaderboardRepository, cache ports.Cache, ttl time.Duration) *LeaderboardUseCase {
	if cache == nil {
		cache = ports.NopCache{}
	}
	return &LeaderboardUseCase{repo: repo, cache: cache, ttl: ttl}
}

// Get devuelve el ranking de (period, layer) marcando al empleado que consulta.
// period vacío = day, layer vacío = city.
func (uc *LeaderboardUseCase) Get(ctx context.Context, employeeID, period, layer string) (*dto.LeaderboardResponse, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	layer = strings.ToLower(strings.TrimSpace(layer))
	if period == "" {
		period = entity.SegmentDay
	}
	if layer == "" {
		layer = entity.LayerCity
	}
	if period != entity.SegmentDay && period != entity.SegmentWeek {
		return nil, domain.Invalid("Invalid period. Use 'day' or 'week'")
	}
	if layer != entity.LayerCity && layer != entity.LayerCluster {
		return nil, domain.Invalid("Invalid layer. Use 'city' or 'cluster'")
	}

	rows, err := uc.rows(ctx, period, layer)
	if err != nil {
		return nil, err
	}
	for i := range rows.Entries {
		rows.Entries[i].IsCurrentUser = rows.Entries[i].EmployeeID == employeeID
	}

	res := &dto.LeaderboardResponse{Period: period, Layer: layer}
	if layer == entity.LayerCluster {
		res.Rankings = groupByLayer(rows)
		res.Grouped = true
	} else {
		res.Rankings = rows.Entries
	}
	return res, nil
}

// leaderboardRows forma cacheada: cada entrada con su layer_value para poder agrupar.
type leaderboardRows struct {
	Entries []dto.LeaderboardEntryDTO `json:"entries"`
	Layers  []string                  `json:"layers"`
}

func (uc *LeaderboardUseCase) rows(ctx context.Context, period, layer string) (leaderboardRows, error) {
	key := fmt.Sprintf("leaderboard:%s:%s", period, layer)

	var cached leaderboardRows
	if hit, err := uc.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	list, err := uc.repo.List(ctx, period, layer)
	if err != nil {
		return leaderboardRows{}, fmt.Errorf("leaderboard %s/%s: %w", period, layer, err)
	}
	out := leaderboardRows{
		Entries: make([]dto.LeaderboardEntryDTO, 0, len(list)),
		Layers:  make([]string, 0, len(list)),
	}
	for _, e := range list {
		out.Entries = append(out.Entries, toLeaderboardEntry(e))
		out.Layers = append(out.Layers, e.LayerValue)
	}
	_ = uc.cache.Set(ctx, key, out, uc.ttl)
	return out, nil
}

func toLeaderboardEntry(e entity.LeaderboardEntry) dto.LeaderboardEntryDTO {
	cluster := strings.TrimSpace(e.Cluster)
	if cluster == "" {
		cluster = unknownCluster
	}
	pct := decimal.Zero
	if e.Achievement.Valid {
		pct = e.Achievement.Decimal.Mul(hundred)
	}
	return dto.LeaderboardEntryDTO{
		Rank:        e.Rank,
		Name:        e.Name,
		EmployeeID:  e.EmployeeID,
		Achievement: dto.Money(pct),
		Cluster:     cluster,
	}
}

// groupByLayer arma un bucket por layer_value en orden de aparición, cada uno ordenado por rank.
func groupByLayer(rows leaderboardRows) []dto.ClusterRankingDTO {
	groups := make([]dto.ClusterRankingDTO, 0)
	index := make(map[string]int)
	for i, entry := range rows.Entries {
		name := unknownCluster
		if i < len(rows.Layers) && strings.TrimSpace(rows.Layers[i]) != "" {
			name = rows.Layers[i]
		}
		g, ok := index[name]
		if !ok {
			g = len(groups)
			index[name] = g
			groups = append(groups, dto.ClusterRankingDTO{Cluster: name})
		}
		groups[g].Rankings = append(groups[g].Rankings, entry)
	}
	for i := range groups {
		sort.SliceStable(groups[i].Rankings, func(a, b int) bool {
			return groups[i].Rankings[a].Rank < groups[i].Rankings[b].Rank
		})
	}
	return groups
}
