package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// valueCalls renders "c0.Value(), c1.Value(), ..." with an optional
// receiver prefix such as "c." for method bodies.
func valueCalls(receiver string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(receiver)
		sb.WriteString("c")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(".Value()")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
