package encode

type EncodeOption func(*EncState)

// Indent sets the string prepended once per nesting level. The default
// is a tab.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// LineEnding sets the terminator Encode writes after each line. The
// default is "\n".
func LineEnding(s string) EncodeOption {
	return func(es *EncState) { es.lineEnding = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
