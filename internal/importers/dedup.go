package importers

import "github.com/harrison/pxhist/internal/pxhist"

// Dedup drops consecutive duplicate invocations, comparing each candidate
// only against the immediately preceding *kept* record — not against the
// full set seen so far. This is deliberate (see DESIGN.md's Open
// Questions): a shell history file can legitimately contain the same
// command run many times at different points in history, and only
// back-to-back repeats (the same command re-appended by a race between an
// import and a live shell, for instance) should collapse.
func Dedup(invocations []pxhist.Invocation) []pxhist.Invocation {
	if len(invocations) == 0 {
		return nil
	}

	out := make([]pxhist.Invocation, 0, len(invocations))
	out = append(out, invocations[0])
	for _, inv := range invocations[1:] {
		if inv.SameishAs(out[len(out)-1]) {
			continue
		}
		out = append(out, inv)
	}
	return out
}
