package entity

import "strings"

// Region is an administrative district down to the 읍면동 level.
type Region struct {
	ID       int64
	Sido     string // 시도명
	Sigg     string // 시군구명
	Emd      string // 읍면동명
	FullName string
}

// NewRegion derives the full name from the district levels. Empty levels are
// left out, e.g. 세종특별자치시 has no 시군구.
func NewRegion(sido, sigg, emd string) *Region {
	parts := make([]string, 0, 3)
	for _, part := range []string{sido, sigg, emd} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return &Region{
		Sido:     sido,
		Sigg:     sigg,
		Emd:      emd,
		FullName: strings.Join(parts, " "),
	}
}
