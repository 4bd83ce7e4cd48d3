package importer

import (
	"fmt"

	"github.com/alexanderramin/trackflow/internal/domain"
)

// Target receives the creation intents of an import. *store.Store
// satisfies it.
type Target interface {
	AddTrack(f domain.TrackFields) domain.Track
	AddColumn(trackID string, f domain.ColumnFields) domain.Column
	AddSubColumn(parentID string, f domain.SubColumnFields) (domain.SubColumn, bool)
	SelectTrack(id string) (domain.Track, bool)
}

// Result counts what an import created.
type Result struct {
	Tracks     []domain.Track
	Columns    int
	SubColumns int
	Selected   string
}

// Apply creates every track, column and item of a validated schema through
// target, in file order. Fresh ids are generated by the target.
func Apply(schema *ImportSchema, target Target) (*Result, error) {
	res := &Result{}
	for _, ti := range schema.Tracks {
		track := target.AddTrack(domain.TrackFields{
			Name:        ti.Name,
			StartTime:   ti.Start,
			EndTime:     ti.End,
			Description: ti.Description,
		})
		res.Tracks = append(res.Tracks, track)

		for _, ci := range ti.Columns {
			typ, err := domain.ParseColumnType(domain.CoalesceStr(ci.Type, string(domain.DefaultColumnType)))
			if err != nil {
				return res, fmt.Errorf("column %q: %w", ci.Title, err)
			}
			col := target.AddColumn(track.ID, domain.ColumnFields{
				Title:     ci.Title,
				StartTime: ci.Start,
				EndTime:   ci.End,
				Type:      typ,
			})
			res.Columns++

			n, err := applyItems(target, col.ID, ci.Items)
			res.SubColumns += n
			if err != nil {
				return res, fmt.Errorf("column %q: %w", ci.Title, err)
			}
		}

		if schema.Select != "" && ti.Name == schema.Select && res.Selected == "" {
			target.SelectTrack(track.ID)
			res.Selected = track.ID
		}
	}
	return res, nil
}

func applyItems(target Target, parentID string, items []ItemImport) (int, error) {
	created := 0
	for _, it := range items {
		sub, ok := target.AddSubColumn(parentID, domain.SubColumnFields{
			Title:    it.Title,
			Speaker:  it.Speaker,
			Duration: domain.IntFromPtrWithDefault(domain.DefaultSubColumnDuration, it.Duration),
			Notes:    it.Notes,
		})
		if !ok {
			return created, fmt.Errorf("item %q: parent %s not found", it.Title, parentID)
		}
		created++

		n, err := applyItems(target, sub.ID, it.Items)
		created += n
		if err != nil {
			return created, err
		}
	}
	return created, nil
}
