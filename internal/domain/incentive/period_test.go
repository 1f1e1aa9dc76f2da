package incentive_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/SalesExec-api/internal/domain/incentive"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	d, err := time.ParseInLocation("2006-01-02 15:04", s, loc)
	if err != nil {
		t.Fatalf("fecha inválida %q: %v", s, err)
	}
	return d
}

func TestWeeklyPeriod_SemanaDelDiaSiguiente(t *testing.T) {
	cases := []struct {
		name  string
		now   string
		naive int
		want  int
	}{
		{"domingo pasa a la semana siguiente", "2026-10-18 10:00", 202642, 202643},
		{"lunes coincide con su semana", "2026-10-19 10:00", 202643, 202643},
		{"domingo antes de la semana 53", "2026-12-27 23:59", 202652, 202653},
		{"domingo de cierre de año ISO", "2027-01-03 08:00", 202653, 202701},
		{"primer lunes del año ISO", "2027-01-04 00:00", 202701, 202701},
		{"domingo 2025 pasa a 2026", "2025-12-28 12:00", 202552, 202601},
		{"domingo 2024 pasa a 2025", "2024-12-29 12:00", 202452, 202501},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := day(t, tc.now)
			assert.Equal(t, tc.naive, incentive.YearWeek(now))

			p := incentive.WeeklyPeriod(now)
			assert.Equal(t, incentive.Weekly, p.Kind)
			assert.Equal(t, tc.want, p.YearWeek)
		})
	}
}

func TestWeeklyPeriod_Key(t *testing.T) {
	p := incentive.WeeklyPeriod(day(t, "2026-10-18 10:00"))
	assert.Equal(t, "202643", p.Key())
}

func TestDailyPeriod_Medianoche(t *testing.T) {
	now := day(t, "2026-10-19 23:45")
	p := incentive.DailyPeriod(now)

	assert.Equal(t, incentive.Daily, p.Kind)
	assert.Equal(t, "2026-10-19", p.Key())
	assert.Equal(t, 0, p.Date.Hour())
	assert.Equal(t, now.Location(), p.Date.Location())
}

func TestProrate(t *testing.T) {
	assertDec(t, "100", incentive.Prorate(dec("3100"), incentive.Daily))
	assertDec(t, "700", incentive.Prorate(dec("3100"), incentive.Weekly))
	assertDec(t, "0", incentive.Prorate(dec("0"), incentive.Weekly))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "daily", incentive.Daily.String())
	assert.Equal(t, "weekly", incentive.Weekly.String())
}
