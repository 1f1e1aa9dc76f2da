package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/incentive"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeExecutives struct {
	rows map[string]*entity.Executive
	err  error
}

func (f *fakeExecutives) GetByID(_ context.Context, id string) (*entity.Executive, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[id], nil
}

type fakePerformance struct {
	slabs        []entity.SlabTarget
	achievements map[string]decimal.Decimal
	slabErr      error
	achErr       error

	mu      sync.Mutex
	periods []incentive.Period
}

func (f *fakePerformance) SlabTargets(_ context.Context, _ string, p incentive.Period) ([]entity.SlabTarget, error) {
	f.mu.Lock()
	f.periods = append(f.periods, p)
	f.mu.Unlock()
	return f.slabs, f.slabErr
}

func (f *fakePerformance) Achievements(_ context.Context, _ string, _ incentive.Period) (map[string]decimal.Decimal, error) {
	return f.achievements, f.achErr
}

type fakeLeaderboard struct {
	rows  []entity.LeaderboardEntry
	err   error
	calls int
}

func (f *fakeLeaderboard) List(_ context.Context, _, _ string) ([]entity.LeaderboardEntry, error) {
	f.calls++
	return f.rows, f.err
}

type fakeCustomers struct {
	nudge   []entity.NudgeCustomer
	funnel  []entity.FunnelCustomer
	target  []entity.TargetPageCustomer
	base    []entity.BaseCustomer
	err     error
	layer   string
	metric  string
	filters entity.BaseCustomerFilter
}

func (f *fakeCustomers) NudgeZone(context.Context, string) ([]entity.NudgeCustomer, error) {
	return f.nudge, f.err
}

func (f *fakeCustomers) SoClose(context.Context, string) ([]entity.FunnelCustomer, error) {
	return f.funnel, f.err
}

func (f *fakeCustomers) TargetPage(_ context.Context, _ string, layer, metric string) ([]entity.TargetPageCustomer, error) {
	f.layer, f.metric = layer, metric
	return f.target, f.err
}

func (f *fakeCustomers) Base(_ context.Context, _ string, filter entity.BaseCustomerFilter) ([]entity.BaseCustomer, error) {
	f.filters = filter
	return f.base, f.err
}

type fakeAttention struct {
	metrics []string
	rows    []entity.AttentionRow
	err     error
	metric  string
}

func (f *fakeAttention) Metrics(context.Context, string) ([]string, error) {
	return f.metrics, f.err
}

func (f *fakeAttention) Customers(_ context.Context, _ string, metric string) ([]entity.AttentionRow, error) {
	f.metric = metric
	return f.rows, f.err
}

func (f *fakeAttention) SKUDetails(_ context.Context, _, _ string, metric string) ([]entity.AttentionRow, error) {
	f.metric = metric
	return f.rows, f.err
}

type fakeNotifications struct {
	rows  []entity.Notification
	err   error
	asOf  time.Time
	limit int
	calls int
}

func (f *fakeNotifications) Latest(_ context.Context, asOf time.Time, limit int) ([]entity.Notification, error) {
	f.calls++
	f.asOf, f.limit = asOf, limit
	return f.rows, f.err
}

type fakeEvents struct {
	saved []entity.AppEvent
	err   error
}

func (f *fakeEvents) Append(_ context.Context, e *entity.AppEvent) error {
	if f.err != nil {
		return f.err
	}
	e.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, *e)
	return nil
}

// memCache implementa ports.Cache serializando en JSON, como la cache Redis.
type memCache struct {
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.sets++
	c.data[key] = b
	return nil
}

func ptr[T any](v T) *T { return &v }
