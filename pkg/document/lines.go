package document

// BuildLines computes per-line byte offsets for content. It handles LF,
// CRLF, and CR line endings, and a final line without a terminator.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return nil
	}

	var lines []LineInfo
	start := 0
	i := 0

	for i < len(content) {
		c := content[i]
		if c == '\n' {
			lines = append(lines, LineInfo{StartOffset: start, NewlineStart: i, EndOffset: i + 1})
			i++
			start = i
			continue
		}
		if c == '\r' {
			nlStart := i
			i++
			if i < len(content) && content[i] == '\n' {
				i++
			}
			lines = append(lines, LineInfo{StartOffset: start, NewlineStart: nlStart, EndOffset: i})
			start = i
			continue
		}
		i++
	}

	if start < len(content) {
		lines = append(lines, LineInfo{StartOffset: start, NewlineStart: len(content), EndOffset: len(content)})
	}

	return lines
}

// lineAtOffset returns the 1-based line containing the byte offset.
// Offsets past the end map to the last line.
func lineAtOffset(lines []LineInfo, offset int) int {
	lo, hi := 0, len(lines)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if lines[mid].EndOffset <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo + 1
}
