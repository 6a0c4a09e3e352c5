package pxhist

// Invocation is one recorded shell command: either a fully-sealed entry
// (both timestamps and an exit status present) or a pending entry appended
// at command start and sealed later by the shell's precmd hook.
type Invocation struct {
	Command          BinaryString
	ShellName        string
	WorkingDirectory *BinaryString
	Hostname         *BinaryString
	Username         *BinaryString
	ExitStatus       *int64
	StartUnixTime    *int64
	EndUnixTime      *int64
	SessionID        int64
}

// SameishAs reports whether two invocations are adjacent-duplicate
// candidates: same command text and same start timestamp. Only these two
// fields participate, matching the original import deduplication's
// intentionally loose notion of "same command" (it ignores exit status,
// directory, and duration so that a command whose seal raced its own
// import doesn't produce two near-identical rows).
func (inv Invocation) SameishAs(other Invocation) bool {
	if !inv.Command.Equal(other.Command) {
		return false
	}
	return int64PtrEqual(inv.StartUnixTime, other.StartUnixTime)
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// JoinCommandWords assembles positional command-line words into the single
// byte string stored as Command, space-separated with no trailing space.
func JoinCommandWords(words []string) []byte {
	if len(words) == 0 {
		return nil
	}
	total := len(words) - 1
	for _, w := range words {
		total += len(w)
	}
	out := make([]byte, 0, total)
	for i, w := range words {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, w...)
	}
	return out
}
