// Package charts renders statistics images with go-chart.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
)

var (
	currentColor = drawing.ColorFromHex("4682b8")
	goalColor    = drawing.ColorFromHex("2ca02c")
	weightColor  = drawing.ColorFromHex("2E86AB")
)

// Renderer draws PNG charts. It implements ports.ChartRenderer.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// WeightChart renders weight history as a line chart.
// Records must be in chronological order.
func (r *Renderer) WeightChart(records []models.WeightRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, errors.NewValidationError("records", "нет данных о весе")
	}

	xValues := make([]time.Time, 0, len(records))
	yValues := make([]float64, 0, len(records))
	for _, rec := range records {
		day, err := time.Parse(constants.DateFormat, rec.Date)
		if err != nil {
			continue
		}
		xValues = append(xValues, day)
		yValues = append(yValues, rec.Weight)
	}
	if len(xValues) == 0 {
		return nil, errors.NewValidationError("records", "нет данных о весе")
	}
	// labels on the first and last measurements, as on the matplotlib
	// version of this chart
	var annotations []chart.Value2
	if len(xValues) > 1 {
		first, last := 0, len(xValues)-1
		annotations = []chart.Value2{
			{
				XValue: chart.TimeToFloat64(xValues[first]),
				YValue: yValues[first],
				Label:  fmt.Sprintf("%.1f кг", yValues[first]),
			},
			{
				XValue: chart.TimeToFloat64(xValues[last]),
				YValue: yValues[last],
				Label:  fmt.Sprintf("%.1f кг", yValues[last]),
			},
		}
	}

	// a single point cannot span an axis range
	if len(xValues) == 1 {
		xValues = append(xValues, xValues[0].AddDate(0, 0, 1))
		yValues = append(yValues, yValues[0])
	}

	graph := chart.Chart{
		Title:  "Динамика веса",
		Width:  1000,
		Height: 600,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("02.01"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f кг", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Вес",
				Style: chart.Style{
					StrokeColor: weightColor,
					StrokeWidth: 2,
					DotColor:    weightColor,
					DotWidth:    5,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}
	if len(annotations) > 0 {
		graph.Series = append(graph.Series, chart.AnnotationSeries{
			Annotations: annotations,
			Style: chart.Style{
				StrokeColor: weightColor,
				FillColor:   drawing.ColorFromHex("fff3b0"),
			},
		})
	}

	return render(&graph)
}

// WaterChart renders last-week water intake as daily bars.
func (r *Renderer) WaterChart(days []models.WaterDay, goal int) ([]byte, error) {
	if len(days) == 0 {
		return nil, errors.NewValidationError("days", "нет данных о воде")
	}

	bars := make([]chart.Value, 0, len(days))
	maxAmount := float64(goal)
	for _, day := range days {
		label := day.Date
		if parsed, err := time.Parse(constants.DateFormat, day.Date); err == nil {
			label = parsed.Format("02.01")
		}
		bars = append(bars, chart.Value{
			Value: float64(day.Amount),
			Label: label,
			Style: chart.Style{
				FillColor:   currentColor,
				StrokeColor: currentColor,
			},
		})
		if float64(day.Amount) > maxAmount {
			maxAmount = float64(day.Amount)
		}
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Потребление воды за неделю (цель %d мл)", goal),
		Width:    1000,
		Height:   600,
		BarWidth: 70,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxAmount * 1.15},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f мл", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	return renderBars(&graph)
}

// NutritionChart compares today's totals against the user's targets.
// Calories are scaled down by 10 to share an axis with the macros.
func (r *Renderer) NutritionChart(totals models.DailyTotals, goalCalories, goalProtein, goalFat, goalCarbs float64) ([]byte, error) {
	type pair struct {
		label   string
		current float64
		goal    float64
	}
	pairs := []pair{
		{"Калории/10", totals.Calories / 10, goalCalories / 10},
		{"Белки", totals.Protein, goalProtein},
		{"Жиры", totals.Fat, goalFat},
		{"Углеводы", totals.Carbs, goalCarbs},
	}

	bars := make([]chart.Value, 0, len(pairs)*2)
	var maxValue float64
	for _, p := range pairs {
		bars = append(bars,
			chart.Value{
				Value: p.current,
				Label: p.label,
				Style: chart.Style{FillColor: currentColor, StrokeColor: currentColor},
			},
			chart.Value{
				Value: p.goal,
				Label: "цель",
				Style: chart.Style{FillColor: goalColor, StrokeColor: goalColor},
			},
		)
		if p.current > maxValue {
			maxValue = p.current
		}
		if p.goal > maxValue {
			maxValue = p.goal
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	graph := chart.BarChart{
		Title:    "Сравнение текущих значений с целями",
		Width:    1000,
		Height:   600,
		BarWidth: 55,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.15},
		},
		Bars: bars,
	}

	return renderBars(&graph)
}

func render(graph *chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.NewInternalError("chart rendering failed", err)
	}
	return buf.Bytes(), nil
}

func renderBars(graph *chart.BarChart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.NewInternalError("chart rendering failed", err)
	}
	return buf.Bytes(), nil
}
