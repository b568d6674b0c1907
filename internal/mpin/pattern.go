package mpin

import "time"

// DatePatterns returns the set of digit strings of the given length that can
// be derived from a calendar date. The enumeration is deliberately narrow:
// these are the combinations people actually pick, not every permutation of
// the date fields (note there is no yyyy-based 6-digit pattern).
func DatePatterns(d time.Time, length int) map[string]struct{} {
	dd := d.Format("02")
	mm := d.Format("01")
	yy := d.Format("06")
	yyyy := d.Format("2006")

	var pats []string
	switch length {
	case 4:
		pats = []string{
			dd + mm, mm + dd,
			yyyy,
			dd + yy, yy + dd,
			mm + yy, yy + mm,
			dd + dd, mm + mm, yy + yy,
		}
	case 6:
		pats = []string{
			dd + mm + yy,
			mm + dd + yy,
			yy + mm + dd,
			yy + dd + mm,
		}
	}

	set := make(map[string]struct{}, len(pats))
	for _, p := range pats {
		set[p] = struct{}{}
	}
	return set
}
