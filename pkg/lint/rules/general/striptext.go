package general

// stripCommentsAndStrings replaces comment and string-literal bytes with
// spaces so structural scans (brace depth, call sites) cannot be fooled by
// braces or keywords inside text. Newlines are preserved.
func stripCommentsAndStrings(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)

	const (
		code = iota
		lineComment
		blockComment
		strSingle
		strDouble
		strTemplate
	)

	state := code
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch state {
		case code:
			switch {
			case c == '/' && i+1 < len(out) && out[i+1] == '/':
				state = lineComment
				out[i] = ' '
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				state = blockComment
				out[i] = ' '
			case c == '\'':
				state = strSingle
				out[i] = ' '
			case c == '"':
				state = strDouble
				out[i] = ' '
			case c == '`':
				state = strTemplate
				out[i] = ' '
			}
		case lineComment:
			if c == '\n' {
				state = code
			} else {
				out[i] = ' '
			}
		case blockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i] = ' '
				out[i+1] = ' '
				i++
				state = code
			} else if c != '\n' {
				out[i] = ' '
			}
		case strSingle, strDouble, strTemplate:
			closer := byte('\'')
			if state == strDouble {
				closer = '"'
			} else if state == strTemplate {
				closer = '`'
			}
			switch {
			case c == '\\' && i+1 < len(out):
				out[i] = ' '
				if out[i+1] != '\n' {
					out[i+1] = ' '
				}
				i++
			case c == closer:
				out[i] = ' '
				state = code
			case c == '\n' && state != strTemplate:
				// Unterminated literal; bail out of the state.
				state = code
			default:
				if c != '\n' {
					out[i] = ' '
				}
			}
		}
	}
	return out
}
