package models

import (
	"encoding/json"
	"testing"
)

func TestTypeDistribution_PreservesDocumentOrder(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantTypes  []string
		wantCounts []int
	}{
		{
			name:       "given order is not alphabetical",
			body:       `{"Pump":2,"Valve":1,"Compressor":7}`,
			wantTypes:  []string{"Pump", "Valve", "Compressor"},
			wantCounts: []int{2, 1, 7},
		},
		{
			name:       "single type",
			body:       `{"Reactor":5}`,
			wantTypes:  []string{"Reactor"},
			wantCounts: []int{5},
		},
		{
			name:       "float counts are truncated",
			body:       `{"Pump":2.0}`,
			wantTypes:  []string{"Pump"},
			wantCounts: []int{2},
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantTypes:  []string{},
			wantCounts: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dist TypeDistribution
			if err := json.Unmarshal([]byte(tt.body), &dist); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(dist) != len(tt.wantTypes) {
				t.Fatalf("got %d entries, want %d", len(dist), len(tt.wantTypes))
			}
			for i := range dist {
				if dist[i].Type != tt.wantTypes[i] {
					t.Errorf("entry %d: type %q, want %q", i, dist[i].Type, tt.wantTypes[i])
				}
				if dist[i].Count != tt.wantCounts[i] {
					t.Errorf("entry %d: count %d, want %d", i, dist[i].Count, tt.wantCounts[i])
				}
			}
		})
	}
}

func TestTypeDistribution_RoundTrip(t *testing.T) {
	body := `{"Pump":2,"Valve":1,"Heat Exchanger":3}`
	var dist TypeDistribution
	if err := json.Unmarshal([]byte(body), &dist); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(dist)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != body {
		t.Errorf("round trip changed order or content: %s", out)
	}
}

func TestTypeDistribution_Null(t *testing.T) {
	var dist TypeDistribution
	if err := json.Unmarshal([]byte(`null`), &dist); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if dist != nil {
		t.Errorf("expected nil distribution, got %v", dist)
	}
}

func TestDatasetID_AcceptsStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		body string
		want DatasetID
	}{
		{"string id", `"abc-123"`, "abc-123"},
		{"numeric id", `42`, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id DatasetID
			if err := json.Unmarshal([]byte(tt.body), &id); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if id != tt.want {
				t.Errorf("got %q, want %q", id, tt.want)
			}
		})
	}
}

func TestActiveView_ExactlyOneVariant(t *testing.T) {
	rows := []EquipmentRow{{Name: "P-101", Type: "Pump", Flowrate: 120, Pressure: 4.2, Temperature: 60}}
	summary := Summary{TotalCount: 1, TypeDistribution: TypeDistribution{{Type: "Pump", Count: 1}}}

	live := NewLiveView(rows, summary)
	if live.Kind != ViewLive || live.Live == nil || live.Historical != nil {
		t.Fatalf("live view malformed: %+v", live)
	}
	if !live.HasDataset() {
		t.Error("live view should report an active dataset")
	}

	hist := NewHistoricalView("7", rows, summary, DatasetAnalytics{})
	if hist.Kind != ViewHistorical || hist.Historical == nil || hist.Live != nil {
		t.Fatalf("historical view malformed: %+v", hist)
	}

	empty := EmptyView()
	if empty.HasDataset() || empty.Rows() != nil || empty.Summary() != nil || empty.Analytics() != nil {
		t.Errorf("empty view should expose no dataset: %+v", empty)
	}
}
