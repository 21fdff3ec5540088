package cli

import (
	"fmt"
	"strings"

	"github.com/ava12/eqdef/source"
)

// splitSamples splits content into separate sources.
// Content is a single sample unless multi is true or content starts with prefix (if prefix is not empty).
// For multiple samples the first line is a separator: each separator line starts with the same run of
// non-spacing characters, the rest of a separator line is ignored. The line feed preceding a separator
// is not a part of sample.
func splitSamples(name, content string, multi bool, prefix string) []*source.Source {
	content = source.NormalizeNls(content)
	if prefix != "" && strings.HasPrefix(content, prefix) {
		multi = true
	}

	if !multi {
		return []*source.Source{source.New(name, content)}
	}

	content = strings.TrimSuffix(content, "\n")
	whole := source.New(name, content)
	lines := strings.Split(content, "\n")
	separator := linePrefix(lines[0])
	if separator == "" {
		return nil
	}

	var result []*source.Source
	add := func(first, last int) {
		sampleName := fmt.Sprintf("%s, sample #%d (lines %d-%d)", name, len(result)+1, first+1, last)
		text := content[whole.Pos(first+1, 1):whole.Pos(last+1, 1)]
		result = append(result, source.New(sampleName, strings.TrimSuffix(text, "\n")))
	}

	first := 1
	for i := 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], separator) {
			add(first, i)
			first = i + 1
		}
	}

	if first < len(lines) {
		add(first, len(lines))
	}

	return result
}

func linePrefix(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] <= ' ' {
			return line[:i]
		}
	}

	return line
}
