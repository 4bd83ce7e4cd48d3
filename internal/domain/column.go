package domain

// Column is a scheduled section within a track. StartTime and EndTime are
// user-entered; children derive their times from StartTime but never
// constrain EndTime.
type Column struct {
	ID         string      `json:"id"`
	TrackID    string      `json:"trackId"`
	Title      string      `json:"title"`
	StartTime  string      `json:"startTime"`
	EndTime    string      `json:"endTime"`
	Type       ColumnType  `json:"type"`
	SubColumns []SubColumn `json:"subColumns"`
}

// ColumnFields carries the user-provided fields of a new Column.
type ColumnFields struct {
	Title     string
	StartTime string
	EndTime   string
	Type      ColumnType
}
