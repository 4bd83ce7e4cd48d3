package domain

// Track is a top-level, independently time-boxed schedule lane.
type Track struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description,omitempty"`
}

// TrackFields carries the editable fields of a Track. Omitted values are
// empty strings.
type TrackFields struct {
	Name        string
	StartTime   string
	EndTime     string
	Description string
}

// Fields returns the editable fields of t.
func (t Track) Fields() TrackFields {
	return TrackFields{
		Name:        t.Name,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Description: t.Description,
	}
}

// WithFields returns a copy of t with every editable field replaced.
func (t Track) WithFields(f TrackFields) Track {
	t.Name = f.Name
	t.StartTime = f.StartTime
	t.EndTime = f.EndTime
	t.Description = f.Description
	return t
}
