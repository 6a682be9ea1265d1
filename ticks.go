package chart

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gonum.org/v1/plot"
)

// Ticks returns the labelled major ticks inside domain. A count of 0
// selects gonum's automatic ticks, any other count at most count ticks on
// a 1-2-5 grid.
func Ticks(domain Interval, count int) []plot.Tick {
	if !domain.Valid() || domain.Min == domain.Max {
		return nil
	}
	var ticker plot.Ticker = plot.DefaultTicks{}
	if count > 0 {
		ticker = CountTicks(count)
	}
	var majors []plot.Tick
	for _, t := range ticker.Ticks(domain.Min, domain.Max) {
		if t.IsMinor() || !domain.Contains(t.Value) {
			continue
		}
		majors = append(majors, t)
	}
	digits := fractionDigits(majors)
	for i := range majors {
		majors[i].Label = FormatNumber(majors[i].Value, digits)
	}
	return majors
}

// CountTicks is a plot.Ticker producing at most the given number of
// major ticks on a 1-2-5 grid.
type CountTicks int

// Ticks implements plot.Ticker.
func (n CountTicks) Ticks(min, max float64) []plot.Tick {
	if n < 1 || !(min < max) {
		return nil
	}
	if n == 1 {
		return []plot.Tick{{Value: min, Label: FormatNumber(min, -1)}}
	}

	g := gridTicker{min: min, max: max}
	guess := 3 * int(math.Floor(math.Log10((max-min)/float64(n))))
	o := scale.TickOptions{Max: int(n)}
	level, ok := o.FindLevel(g, guess)
	if !ok {
		return nil
	}

	var out []plot.Tick
	for _, v := range g.ticks(level) {
		if v == 0 {
			v = 0 // no -0
		}
		out = append(out, plot.Tick{Value: v})
	}
	digits := fractionDigits(out)
	for i := range out {
		out[i].Label = FormatNumber(out[i].Value, digits)
	}
	return out
}

// gridTicker is a scale.Ticker over the 1-2-5 grid covering [min, max].
type gridTicker struct{ min, max float64 }

func (g gridTicker) CountTicks(level int) int {
	step := tickStep(level)
	return int(math.Floor(g.max/step) - math.Ceil(g.min/step) + 1)
}

func (g gridTicker) TicksAtLevel(level int) interface{} { return g.ticks(level) }

func (g gridTicker) ticks(level int) []float64 {
	step := tickStep(level)
	var ts []float64
	for k := math.Ceil(g.min / step); k*step <= g.max; k++ {
		ts = append(ts, k*step)
	}
	return ts
}

// tickStep maps a tick level to its step width: level 3k+i has step
// {1,2,5}[i]*10^k.
func tickStep(level int) float64 {
	k := level / 3
	i := level % 3
	if i < 0 {
		i += 3
		k--
	}
	return []float64{1, 2, 5}[i] * math.Pow(10, float64(k))
}

// fractionDigits returns the number of fraction digits needed to tell
// adjacent tick values apart.
func fractionDigits(ticks []plot.Tick) int {
	if len(ticks) < 2 {
		return -1
	}
	step := math.Abs(ticks[1].Value - ticks[0].Value)
	if step == 0 || step >= 1 {
		return 0
	}
	d := int(math.Ceil(-math.Log10(step) - 1e-9))
	if x := step * math.Pow(10, float64(d)); math.Abs(x-math.Round(x)) > 1e-6 {
		d++
	}
	return d
}

// FormatNumber formats v for tick labels and hover readouts with digits
// fraction digits. A negative digits value keeps up to 6 significant
// fraction digits.
func FormatNumber(v float64, digits int) string {
	p := message.NewPrinter(language.English)
	if digits < 0 {
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(6)))
	}
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}
