package models

// AuthPanel identifies which auth form is open while logged out.
type AuthPanel string

const (
	PanelNone     AuthPanel = "none"
	PanelLogin    AuthPanel = "login"
	PanelRegister AuthPanel = "register"
)

// ViewKind tags the ActiveView union.
type ViewKind string

const (
	// ViewEmpty is the authenticated base view with no dataset selected.
	ViewEmpty      ViewKind = "empty"
	ViewLive       ViewKind = "live"
	ViewHistorical ViewKind = "historical"
)

// LiveDataset is the most recent upload's rows and summary.
type LiveDataset struct {
	Rows    []EquipmentRow
	Summary Summary
}

// HistoricalDataset is a previously-uploaded dataset opened from history,
// together with its on-demand analytics.
type HistoricalDataset struct {
	EntryID   DatasetID
	Rows      []EquipmentRow
	Summary   Summary
	Analytics DatasetAnalytics
}

// ActiveView is the single dataset currently driving the display. Exactly
// one variant is populated; constructing it through the helpers below keeps
// "both datasets active" unrepresentable. Replacements are whole-value
// assignments, so a renderer never observes a half-updated view.
type ActiveView struct {
	Kind       ViewKind
	Live       *LiveDataset
	Historical *HistoricalDataset
}

// EmptyView is the authenticated base view.
func EmptyView() ActiveView {
	return ActiveView{Kind: ViewEmpty}
}

// NewLiveView builds the view for a fresh upload response.
func NewLiveView(rows []EquipmentRow, summary Summary) ActiveView {
	return ActiveView{Kind: ViewLive, Live: &LiveDataset{Rows: rows, Summary: summary}}
}

// NewHistoricalView builds the view for an opened history entry.
func NewHistoricalView(id DatasetID, rows []EquipmentRow, summary Summary, analytics DatasetAnalytics) ActiveView {
	return ActiveView{Kind: ViewHistorical, Historical: &HistoricalDataset{
		EntryID:   id,
		Rows:      rows,
		Summary:   summary,
		Analytics: analytics,
	}}
}

// Rows returns the active dataset's rows, or nil for the empty view.
func (v ActiveView) Rows() []EquipmentRow {
	switch v.Kind {
	case ViewLive:
		return v.Live.Rows
	case ViewHistorical:
		return v.Historical.Rows
	}
	return nil
}

// Summary returns the active dataset's summary, or nil for the empty view.
func (v ActiveView) Summary() *Summary {
	switch v.Kind {
	case ViewLive:
		return &v.Live.Summary
	case ViewHistorical:
		return &v.Historical.Summary
	}
	return nil
}

// Analytics returns the historical analytics, or nil for other views.
func (v ActiveView) Analytics() *DatasetAnalytics {
	if v.Kind == ViewHistorical {
		return &v.Historical.Analytics
	}
	return nil
}

// HasDataset reports whether a numeric dataset is active.
func (v ActiveView) HasDataset() bool {
	return v.Kind == ViewLive || v.Kind == ViewHistorical
}
