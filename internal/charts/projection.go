package charts

import (
	"equipviz/models"
)

// Series is one named line with its points in row order.
type Series struct {
	Name   string    `json:"name"`
	Points []float64 `json:"points"`
}

// CategoryChart describes a bar or pie chart: parallel category/value
// slices in the distribution's given order.
type CategoryChart struct {
	Categories []string `json:"categories"`
	Values     []int    `json:"values"`
}

// LineChart describes the parameter comparison chart: one x-axis label per
// equipment row and three fixed series.
type LineChart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Bundle is the chart-ready projection of the active dataset.
type Bundle struct {
	Bar  CategoryChart `json:"bar"`
	Pie  CategoryChart `json:"pie"`
	Line *LineChart    `json:"line,omitempty"`
}

// Project derives chart data from the active view. It is a pure function of
// its input and returns nil when no numeric dataset is active or the summary
// is missing/empty. Category order follows the distribution as the backend
// sent it; trend arrays are rendered exactly as given.
func Project(view models.ActiveView) *Bundle {
	summary := view.Summary()
	if summary == nil || summary.TotalCount == 0 {
		return nil
	}

	category := CategoryChart{
		Categories: summary.TypeDistribution.Types(),
		Values:     summary.TypeDistribution.Counts(),
	}

	bundle := &Bundle{Bar: category, Pie: category}

	if analytics := view.Analytics(); analytics != nil {
		bundle.Line = lineFromTrends(analytics.ParameterTrends)
	} else {
		bundle.Line = lineFromRows(view.Rows())
	}

	return bundle
}

func lineFromRows(rows []models.EquipmentRow) *LineChart {
	if len(rows) == 0 {
		return nil
	}

	labels := make([]string, len(rows))
	flowrates := make([]float64, len(rows))
	pressures := make([]float64, len(rows))
	temperatures := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = row.Name
		flowrates[i] = row.Flowrate
		pressures[i] = row.Pressure
		temperatures[i] = row.Temperature
	}

	return &LineChart{
		Labels: labels,
		Series: []Series{
			{Name: "Flowrate", Points: flowrates},
			{Name: "Pressure", Points: pressures},
			{Name: "Temperature", Points: temperatures},
		},
	}
}

func lineFromTrends(trends models.ParameterTrends) *LineChart {
	if len(trends.EquipmentNames) == 0 {
		return nil
	}

	return &LineChart{
		Labels: trends.EquipmentNames,
		Series: []Series{
			{Name: "Flowrate", Points: trends.Flowrates},
			{Name: "Pressure", Points: trends.Pressures},
			{Name: "Temperature", Points: trends.Temperatures},
		},
	}
}
