package ast

// Format re-serializes parsed lines into BASIC source, one line per row.
// Spacing is canonical: the output of Format parses back into a tree of
// the same shape.
func Format(lines []*Line) string {
	var buf []byte
	for _, l := range lines {
		buf = l.AppendString(buf)
		buf = append(buf, '\n')
	}
	return string(buf)
}

// FormatNode returns the BASIC source form of a single node.
func FormatNode(n Node) string {
	if n == nil {
		return ""
	}
	return string(n.AppendString(nil))
}
