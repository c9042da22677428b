package postgres

import (
	"fmt"
	"strings"
)

// crewField names a filterable attribute of a crew row.
type crewField int

const (
	fieldCrewID crewField = iota
	fieldApplicationStatus
	fieldUserID
)

func (f crewField) column() string {
	switch f {
	case fieldCrewID:
		return "c.crew_id"
	case fieldApplicationStatus:
		return "c.application_status"
	case fieldUserID:
		return "c.user_id"
	default:
		panic(fmt.Sprintf("postgres: unknown crew field %d", int(f)))
	}
}

const crewProjection = `SELECT c.crew_id, c.application_status, u.user_id, u.name, u.email
	          FROM crew c`

// crewQuery builds a crew selection with its user joined. Values are never
// part of the SQL text; each predicate consumes the next positional parameter.
// The user is LEFT JOINed unless RequireUser is called, so crew rows without
// a matching user are still selected.
type crewQuery struct {
	where       []crewField
	requireUser bool
}

func selectCrew() *crewQuery {
	return &crewQuery{}
}

// Where adds an equality predicate on f.
func (q *crewQuery) Where(f crewField) *crewQuery {
	q.where = append(q.where, f)
	return q
}

// RequireUser drops crew rows that have no matching user.
func (q *crewQuery) RequireUser() *crewQuery {
	q.requireUser = true
	return q
}

func (q *crewQuery) SQL() string {
	var b strings.Builder
	b.WriteString(crewProjection)
	if q.requireUser {
		b.WriteString("\n\t          JOIN users u ON u.user_id = c.user_id")
	} else {
		b.WriteString("\n\t          LEFT JOIN users u ON u.user_id = c.user_id")
	}
	for i, f := range q.where {
		if i == 0 {
			b.WriteString("\n\t          WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(&b, "%s = $%d", f.column(), i+1)
	}
	b.WriteString("\n\t          ORDER BY c.crew_id")
	return b.String()
}
