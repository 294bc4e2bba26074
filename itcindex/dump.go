package itcindex

import (
	"fmt"
	"strings"

	"github.com/kr/text"
)

// Dump renders idx as an indented tree, for embedding under a map's debug
// output. Slot and Unknown nodes render on one line; Split nests its
// children one level deeper.
func (idx ItcIndex) Dump() string {
	switch idx.k {
	case unknownKind:
		return "Unknown"
	case slotKind:
		return fmt.Sprintf("Slot(%d)", idx.slot)
	default:
		var b strings.Builder
		b.WriteString("Split(\n")
		b.WriteString(text.Indent(idx.l.Dump()+",\n", "  "))
		b.WriteString(text.Indent(idx.r.Dump()+"\n", "  "))
		b.WriteString(")")
		return b.String()
	}
}
