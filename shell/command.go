package shell

import (
	"strings"
	"unicode"
)

// Command is one parsed input line
type Command struct {
	Keyword string
	// Args holds whitespace-delimited arguments; for "write" it is exactly
	// the file name followed by the raw remainder of the line
	Args []string
}

// Arg returns the i'th argument or "" if absent
func (c Command) Arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

// Parse splits a line into a keyword and arguments. For "write" the content
// is everything after the file name and one separating space, embedded and
// trailing whitespace included.
func Parse(line string) Command {
	keyword, rest := nextToken(line)
	cmd := Command{Keyword: keyword}
	if keyword == "" {
		return cmd
	}

	if keyword == "write" {
		name, content := nextToken(rest)
		if name == "" {
			return cmd
		}
		if len(content) > 0 && (content[0] == ' ' || content[0] == '\t') {
			content = content[1:]
		}
		cmd.Args = []string{name, content}
		return cmd
	}

	if args := strings.Fields(rest); len(args) > 0 {
		cmd.Args = args
	}
	return cmd
}

// nextToken returns the first whitespace-delimited token of s and everything
// after it, untouched
func nextToken(s string) (token, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end == -1 {
		return s, ""
	}
	return s[:end], s[end:]
}
