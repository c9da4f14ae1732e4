package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("start date must not be after end date")

// DateRange é um intervalo fechado de dias (UTC)
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normaliza as datas para meia-noite UTC e valida a ordem
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: TruncateDay(start), End: TruncateDay(end)}
	if r.Start.After(r.End) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
	}
	return r, nil
}

// SingleDay cria um intervalo de um único dia
func SingleDay(day time.Time) DateRange {
	d := TruncateDay(day)
	return DateRange{Start: d, End: d}
}

// Yesterday retorna o dia anterior a now, em UTC
func Yesterday(now time.Time) time.Time {
	return TruncateDay(now.UTC()).AddDate(0, 0, -1)
}

// Days lista os dias do intervalo em ordem crescente
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) String() string {
	if r.Start.Equal(r.End) {
		return r.Start.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s a %s", r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
}

func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
