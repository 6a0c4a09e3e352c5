package cmd

import "strconv"

// optionalInt64Flag adapts a *int64/*bool pair to pflag.Value, so a flag
// can distinguish "not passed" from "passed as 0" without resorting to a
// pointer-typed flag (cobra/pflag has no Int64PtrVar).
type optionalInt64Flag struct {
	value *int64
	set   *bool
}

func newOptionalInt64Flag(value *int64, set *bool) *optionalInt64Flag {
	return &optionalInt64Flag{value: value, set: set}
}

func (f *optionalInt64Flag) String() string {
	if f.value == nil || !*f.set {
		return ""
	}
	return strconv.FormatInt(*f.value, 10)
}

func (f *optionalInt64Flag) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*f.value = n
	*f.set = true
	return nil
}

func (f *optionalInt64Flag) Type() string {
	return "int"
}
