package ensemble

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gustfront/meteogram/internal/models"
)

// MainMemberID identifies the deterministic (unperturbed) run.
const MainMemberID = "main"

const memberInfix = "_member"

// MemberColumn ties one raw payload column to its canonical member identity.
type MemberColumn struct {
	Column string // raw column key in the payload
	ID     string // "main", a numeric index without padding, or a raw suffix
	index  int    // numeric suffix for ordering; -1 for main
	rawTag bool   // suffix was not numeric; sorts after all numbered members
}

// IsMain reports whether the column is the deterministic run.
func (m MemberColumn) IsMain() bool {
	return m.ID == MainMemberID
}

// RecordKey is the field name the column's values appear under in point
// records: "main" for the deterministic run, "member<N>" otherwise.
func (m MemberColumn) RecordKey() string {
	if m.IsMain() {
		return MainMemberID
	}
	return "member" + m.ID
}

// ResolveMembers finds every column of raw that carries the given variable:
// the bare variable key (the main run) and every "<variable>_member<NN>"
// column. The main run sorts first, numbered members ascend numerically
// regardless of zero padding, and non-numeric suffixes sort last. An absent
// variable yields an empty list, which callers treat as "no data", not an
// error.
func ResolveMembers(raw *models.RawSeries, variable string) []MemberColumn {
	if raw == nil || variable == "" {
		return nil
	}

	var cols []MemberColumn
	prefix := variable + memberInfix
	for key := range raw.Columns {
		if key == variable {
			cols = append(cols, MemberColumn{Column: key, ID: MainMemberID, index: -1})
			continue
		}
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		suffix := key[len(prefix):]
		if n, err := strconv.Atoi(suffix); err == nil && suffix != "" {
			cols = append(cols, MemberColumn{Column: key, ID: strconv.Itoa(n), index: n})
		} else {
			cols = append(cols, MemberColumn{Column: key, ID: suffix, rawTag: true})
		}
	}

	sort.Slice(cols, func(i, j int) bool {
		a, b := cols[i], cols[j]
		if a.IsMain() != b.IsMain() {
			return a.IsMain()
		}
		if a.rawTag != b.rawTag {
			return b.rawTag
		}
		if a.rawTag {
			return a.ID < b.ID
		}
		return a.index < b.index
	})
	return cols
}
