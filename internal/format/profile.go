// Package format renders velocity model records into the two legacy text
// layouts consumed by external seismology tooling: the VELEST fixed-column
// format for 1D profiles and a pipe-delimited table for 3D grids.
//
// Both renderers are pure functions of their arguments. Field widths, spacer
// runs, and literal substrings are part of the wire contract and must not be
// "cleaned up".
package format

import (
	"fmt"
	"sort"
	"strings"

	"velocity-model-service/internal/domain"
)

const velestDescriptor = "vel,depth,vdamp,phase (f5.2,5x,f7.2,2x,f7.3,3x,a1)"

// Profile renders 1D profile points sharing one NFO as a VELEST text block:
// a title line, an optional pagination annotation, then a P-wave section and
// an S-wave section (either omitted entirely when it has no points). Points
// are sorted by depth ascending within each section; equal depths keep their
// input order. Empty input yields an empty string.
func Profile(points []domain.ProfilePoint, bibref string, page domain.Page) string {
	if len(points) == 0 {
		return ""
	}

	var vp, vs []domain.ProfilePoint
	for _, p := range points {
		if p.Wave == domain.WaveS {
			vs = append(vs, p)
		} else {
			vp = append(vp, p)
		}
	}
	sort.SliceStable(vp, func(i, j int) bool { return vp[i].Depth < vp[j].Depth })
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Depth < vs[j].Depth })

	lines := make([]string, 0, len(points)+4)

	title := "1D " + points[0].NFO
	if bibref != "" {
		title += " " + bibref
	}
	lines = append(lines, title)

	if note, ok := pageNote(page, len(points)); ok {
		lines = append(lines, note)
	}

	if len(vp) > 0 {
		lines = append(lines, fmt.Sprintf(" %d        %s", len(vp), velestDescriptor))
		lines = append(lines, layerLines(vp, "P-VELOCITY MODEL")...)
	}
	if len(vs) > 0 {
		lines = append(lines, fmt.Sprintf(" %d", len(vs)))
		lines = append(lines, layerLines(vs, "S-VELOCITY MODEL")...)
	}

	return strings.Join(lines, "\n")
}

// layerLines renders one wave-type section body. Every line carries the fixed
// vdamp column "001.000"; the first line is tagged with the section label.
func layerLines(points []domain.ProfilePoint, label string) []string {
	out := make([]string, 0, len(points))
	for i, p := range points {
		line := " " + velocityField(p.Velocity) + depthField(p.Depth) + "   001.000"
		if i == 0 {
			line += "           " + label
		}
		out = append(out, line)
	}
	return out
}
