package incentive

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind distingue el periodo diario del semanal.
type Kind int

const (
	Daily Kind = iota
	Weekly
)

// String devuelve el nombre usado en logs y respuestas.
func (k Kind) String() string {
	if k == Weekly {
		return "weekly"
	}
	return "daily"
}

// daysPerMonth es el divisor fijo con el que el warehouse prorratea el variable pay mensual.
const daysPerMonth = 31

var (
	monthDays = decimal.NewFromInt(daysPerMonth)
	weekDays  = decimal.NewFromInt(7)
)

// Period identifica la fila de targets a consultar: una fecha (diario) o un year-week ISO (semanal).
type Period struct {
	Kind     Kind
	Date     time.Time // medianoche del día de referencia, en la zona del caller
	YearWeek int       // YYYYWW; solo para Weekly
}

// DailyPeriod devuelve el periodo del día calendario de now.
func DailyPeriod(now time.Time) Period {
	return Period{Kind: Daily, Date: midnight(now)}
}

// WeeklyPeriod devuelve la semana ISO-8601 (lunes a domingo) de now + 1 día.
// Los reportes externos cierran la semana un día antes; el domingo ya pertenece a la semana siguiente.
func WeeklyPeriod(now time.Time) Period {
	ref := midnight(now).AddDate(0, 0, 1)
	return Period{Kind: Weekly, Date: midnight(now), YearWeek: YearWeek(ref)}
}

// YearWeek codifica la semana ISO de t como YYYYWW (igual que YEARWEEK(t, 1) de MySQL).
func YearWeek(t time.Time) int {
	y, w := t.ISOWeek()
	return y*100 + w
}

// Key clave legible del periodo: "2006-01-02" o "YYYYWW".
func (p Period) Key() string {
	if p.Kind == Weekly {
		return fmt.Sprintf("%d", p.YearWeek)
	}
	return p.Date.Format("2006-01-02")
}

// Prorate convierte el variable pay mensual al periodo (÷31 diario, ÷31×7 semanal).
func Prorate(monthly decimal.Decimal, kind Kind) decimal.Decimal {
	if kind == Weekly {
		return monthly.Div(monthDays).Mul(weekDays)
	}
	return monthly.Div(monthDays)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
