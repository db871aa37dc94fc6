package charts

import (
	"reflect"
	"testing"

	"equipviz/models"
)

func sampleRows() []models.EquipmentRow {
	return []models.EquipmentRow{
		{Name: "P-101", Type: "Pump", Flowrate: 120, Pressure: 4.2, Temperature: 60},
		{Name: "P-102", Type: "Pump", Flowrate: 95, Pressure: 3.8, Temperature: 58},
		{Name: "V-201", Type: "Valve", Flowrate: 40, Pressure: 1.1, Temperature: 25},
	}
}

func sampleSummary() models.Summary {
	return models.Summary{
		TotalCount:     3,
		AvgFlowrate:    85,
		AvgPressure:    3.03,
		AvgTemperature: 47.6,
		TypeDistribution: models.TypeDistribution{
			{Type: "Pump", Count: 2},
			{Type: "Valve", Count: 1},
		},
	}
}

func TestProject_BarAndPieFollowDistributionOrder(t *testing.T) {
	bundle := Project(models.NewLiveView(sampleRows(), sampleSummary()))
	if bundle == nil {
		t.Fatal("expected a projection")
	}

	wantCategories := []string{"Pump", "Valve"}
	wantValues := []int{2, 1}
	if !reflect.DeepEqual(bundle.Bar.Categories, wantCategories) {
		t.Errorf("bar categories = %v, want %v", bundle.Bar.Categories, wantCategories)
	}
	if !reflect.DeepEqual(bundle.Bar.Values, wantValues) {
		t.Errorf("bar values = %v, want %v", bundle.Bar.Values, wantValues)
	}
	if !reflect.DeepEqual(bundle.Pie, bundle.Bar) {
		t.Errorf("pie should mirror bar: %+v vs %+v", bundle.Pie, bundle.Bar)
	}
}

func TestProject_LineFromRows(t *testing.T) {
	bundle := Project(models.NewLiveView(sampleRows(), sampleSummary()))
	if bundle == nil || bundle.Line == nil {
		t.Fatal("expected a line chart")
	}

	if !reflect.DeepEqual(bundle.Line.Labels, []string{"P-101", "P-102", "V-201"}) {
		t.Errorf("labels = %v", bundle.Line.Labels)
	}
	if len(bundle.Line.Series) != 3 {
		t.Fatalf("got %d series, want 3", len(bundle.Line.Series))
	}
	wantNames := []string{"Flowrate", "Pressure", "Temperature"}
	for i, s := range bundle.Line.Series {
		if s.Name != wantNames[i] {
			t.Errorf("series %d name = %q, want %q", i, s.Name, wantNames[i])
		}
		if len(s.Points) != 3 {
			t.Errorf("series %q has %d points, want one per row", s.Name, len(s.Points))
		}
	}
	if bundle.Line.Series[0].Points[0] != 120 {
		t.Errorf("flowrate series should follow row order: %v", bundle.Line.Series[0].Points)
	}
}

func TestProject_HistoricalUsesTrendsAsGiven(t *testing.T) {
	// Trends deliberately disagree with the raw rows in length; the
	// projection must render them untouched.
	analytics := models.DatasetAnalytics{
		TypeDistribution: sampleSummary().TypeDistribution,
		ParameterTrends: models.ParameterTrends{
			EquipmentNames: []string{"A", "B"},
			Flowrates:      []float64{1, 2},
			Pressures:      []float64{3, 4},
			Temperatures:   []float64{5, 6},
		},
	}
	view := models.NewHistoricalView("7", sampleRows(), sampleSummary(), analytics)

	bundle := Project(view)
	if bundle == nil || bundle.Line == nil {
		t.Fatal("expected a line chart")
	}
	if !reflect.DeepEqual(bundle.Line.Labels, []string{"A", "B"}) {
		t.Errorf("labels should come from trends, got %v", bundle.Line.Labels)
	}
	if !reflect.DeepEqual(bundle.Line.Series[1].Points, []float64{3, 4}) {
		t.Errorf("pressure series = %v", bundle.Line.Series[1].Points)
	}
}

func TestProject_NoneWithoutDataset(t *testing.T) {
	if got := Project(models.EmptyView()); got != nil {
		t.Errorf("empty view should project nil, got %+v", got)
	}
}

func TestProject_NoneOnEmptySummary(t *testing.T) {
	// A summary with no total_count must produce nil, not a panic.
	view := models.NewLiveView(nil, models.Summary{})
	if got := Project(view); got != nil {
		t.Errorf("empty summary should project nil, got %+v", got)
	}
}

func TestProject_NoLineForEmptyRows(t *testing.T) {
	summary := sampleSummary()
	bundle := Project(models.NewLiveView(nil, summary))
	if bundle == nil {
		t.Fatal("bar/pie should still project from the summary")
	}
	if bundle.Line != nil {
		t.Errorf("no rows should mean no line chart, got %+v", bundle.Line)
	}
}
