package format

import (
	"strings"

	"velocity-model-service/internal/domain"
)

const defaultR = 1.0

// showRColumn is the R-column inclusion policy: the caller must ask for the
// column AND at least one point must carry a non-default value. A request
// for R against all-default data yields output without the column at all.
func showRColumn(points []domain.GridPoint, includeR bool) bool {
	if !includeR {
		return false
	}
	for _, p := range points {
		if p.R != nil && *p.R != defaultR {
			return true
		}
	}
	return false
}

// Grid renders 3D grid points as a pipe-delimited table: a title line, an
// optional pagination annotation, a column header, then one row per point in
// input order. Values use their shortest decimal form. Empty input yields an
// empty string.
func Grid(points []domain.GridPoint, wave domain.WaveType, includeR bool, bibref string, page domain.Page) string {
	if len(points) == 0 {
		return ""
	}

	showR := showRColumn(points, includeR)

	lines := make([]string, 0, len(points)+3)

	title := "3D " + points[0].NFO
	if bibref != "" {
		title += " " + bibref
	}
	lines = append(lines, title)

	if note, ok := pageNote(page, len(points)); ok {
		lines = append(lines, note)
	}

	header := "Longitude|Latitude|Depth|" + wave.ColumnName()
	if showR {
		header += "|R"
	}
	lines = append(lines, header)

	for _, p := range points {
		fields := []string{
			gridValue(p.Longitude),
			gridValue(p.Latitude),
			gridValue(p.Depth),
			gridValue(p.Velocity),
		}
		if showR {
			r := defaultR
			if p.R != nil {
				r = *p.R
			}
			fields = append(fields, gridValue(r))
		}
		lines = append(lines, strings.Join(fields, "|"))
	}

	return strings.Join(lines, "\n")
}
