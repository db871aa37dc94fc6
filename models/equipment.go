package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Credentials hold the username/password pair entered at login. They live in
// memory only and are replayed as basic auth on every backend call.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EquipmentRow is one record of an uploaded CSV as the backend returns it.
// The JSON keys are the CSV column names, not snake_case.
type EquipmentRow struct {
	Name        string  `json:"Equipment Name"`
	Type        string  `json:"Type"`
	Flowrate    float64 `json:"Flowrate"`
	Pressure    float64 `json:"Pressure"`
	Temperature float64 `json:"Temperature"`
}

// TypeCount is one equipment type with its occurrence count.
type TypeCount struct {
	Type  string
	Count int
}

// TypeDistribution is the backend's type_distribution mapping with its
// document order preserved. Charts must show categories in the order the
// backend sent them, so a plain map is not usable here.
type TypeDistribution []TypeCount

// UnmarshalJSON decodes a JSON object token-by-token so key order survives.
func (d *TypeDistribution) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*d = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("type_distribution: expected object, got %v", tok)
	}

	out := TypeDistribution{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("type_distribution: non-string key %v", keyTok)
		}

		var num json.Number
		if err := dec.Decode(&num); err != nil {
			return fmt.Errorf("type_distribution: count for %q: %w", key, err)
		}
		count, err := num.Int64()
		if err != nil {
			// pandas serializes counts as integers, but tolerate floats.
			f, ferr := num.Float64()
			if ferr != nil {
				return fmt.Errorf("type_distribution: count for %q: %w", key, err)
			}
			count = int64(f)
		}
		out = append(out, TypeCount{Type: key, Count: int(count)})
	}
	*d = out
	return nil
}

// MarshalJSON writes the distribution back as an object in stored order.
func (d TypeDistribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tc := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(tc.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(tc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Counts returns just the values, in stored order.
func (d TypeDistribution) Counts() []int {
	counts := make([]int, len(d))
	for i, tc := range d {
		counts[i] = tc.Count
	}
	return counts
}

// Types returns just the keys, in stored order.
func (d TypeDistribution) Types() []string {
	types := make([]string, len(d))
	for i, tc := range d {
		types[i] = tc.Type
	}
	return types
}

// Summary is the server-computed aggregate for one dataset. It is derived
// 1:1 from the dataset and is replaced wholesale, never patched.
type Summary struct {
	TotalCount       int              `json:"total_count"`
	AvgFlowrate      float64          `json:"avg_flowrate"`
	AvgPressure      float64          `json:"avg_pressure"`
	AvgTemperature   float64          `json:"avg_temperature"`
	TypeDistribution TypeDistribution `json:"type_distribution"`
}

// DatasetID tolerates backends that serialize ids as JSON numbers.
type DatasetID string

func (id *DatasetID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = DatasetID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("dataset id: %w", err)
	}
	*id = DatasetID(n.String())
	return nil
}

// HistoryEntry is an immutable snapshot of a past upload as returned by the
// backend. The client replaces the whole list, never individual entries.
type HistoryEntry struct {
	ID               DatasetID `json:"id"`
	Name             string    `json:"name"`
	UploadedAt       time.Time `json:"uploaded_at"`
	PreviewChartData Summary   `json:"preview_chart_data"`
}

// StatBlock holds min/max/mean/std for one parameter.
type StatBlock struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// ParameterStatistics groups the per-parameter stat blocks.
type ParameterStatistics struct {
	FlowrateStats    StatBlock `json:"flowrate_stats"`
	PressureStats    StatBlock `json:"pressure_stats"`
	TemperatureStats StatBlock `json:"temperature_stats"`
}

// ParameterTrends are pre-aggregated line-chart arrays. The client renders
// them exactly as given; length or ordering mismatches against the raw rows
// are the backend's contract to keep, not ours to reconcile.
type ParameterTrends struct {
	EquipmentNames []string  `json:"equipment_names"`
	Flowrates      []float64 `json:"flowrates"`
	Pressures      []float64 `json:"pressures"`
	Temperatures   []float64 `json:"temperatures"`
}

// DatasetAnalytics is the richer statistics payload fetched on demand for a
// historical dataset. At most one instance is resident at a time.
type DatasetAnalytics struct {
	Statistics       ParameterStatistics `json:"statistics"`
	TypeDistribution TypeDistribution    `json:"type_distribution"`
	ParameterTrends  ParameterTrends     `json:"parameter_trends"`
}
