package internal

import (
	"fmt"
	"strings"

	"github.com/google/btree"
	"github.com/logrusorgru/aurora"

	"github.com/osuushi/planar/internal/dbg"
)

// Debug strings for the sweep. These are never on a hot path; they exist so
// that a misbehaving status structure can be printed mid-sweep and read.

func (ss *sweepSegment) DbgName() string {
	name := dbg.Name(ss)
	if ss.left.X == ss.right.X { // Vertical segments key on their lower endpoint
		name = aurora.Cyan(name).String()
	} else if ss.left.Y == ss.right.Y { // Horizontal
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

func (ss *sweepSegment) String() string {
	return fmt.Sprintf("Segment %s #%d (%v, %v)→(%v, %v)",
		ss.DbgName(), ss.id, ss.left.X, ss.left.Y, ss.right.X, ss.right.Y)
}

// String renders the status bottom to top at the current sweep position.
func (st *sweepStatus) String() string {
	var parts []string
	st.tree.Ascend(func(i btree.Item) bool {
		item := i.(statusItem)
		parts = append(parts, fmt.Sprintf("%s y=%v", item.ss.DbgName(), item.ss.yAt(st.x)))
		return true
	})
	return fmt.Sprintf("Status @ x=%v [%s]", st.x, strings.Join(parts, ", "))
}
