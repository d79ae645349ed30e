package rewrite

import "strings"

// DefaultIndentUnit is the indentation width of one block level
const DefaultIndentUnit = 4

// Blocks closes brace blocks for indentation scoped input.
// Header lines are expected to already end in "{". Whenever a line is indented
// less than the tracked depth, one "}" is emitted per unit of decrease, and the
// depth still open after the last line is closed at the end. The indentation
// of the first line is the floor. Tabs count as one column, so mixed tabs and
// spaces or indentation that is not a multiple of unit misfire.
func Blocks(lines []string, unit int) []string {
	if unit <= 0 {
		unit = DefaultIndentUnit
	}
	out := make([]string, 0, len(lines)+4)
	var blanks []string
	floor, depth := -1, 0

	closeTo := func(ind int) {
		for n := 1; n <= (depth-ind)/unit; n++ {
			out = append(out, strings.Repeat(" ", depth-n*unit)+"}")
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks = append(blanks, line)
			continue
		}
		ind := indentWidth(line)
		if floor < 0 {
			floor, depth = ind, ind
		}
		if ind < floor {
			ind = floor
		}
		if ind < depth {
			closeTo(ind)
			depth = ind
		}
		out = append(out, blanks...)
		blanks = blanks[:0]
		out = append(out, line)
		if strings.HasSuffix(strings.TrimSpace(line), "{") {
			depth = ind + unit
		}
	}
	if floor >= 0 {
		closeTo(floor)
	}
	return append(out, blanks...)
}

// Unblocks drops lone closing braces and re-indents by nesting: each line
// ending in ":" opens one level, each "}" closes one.
func Unblocks(lines []string, unit int) []string {
	if unit <= 0 {
		unit = DefaultIndentUnit
	}
	out := make([]string, 0, len(lines))
	level := 0
	for _, line := range lines {
		t := strings.TrimSpace(line)
		switch {
		case t == "}" || t == "};" || t == "})" || t == "});":
			if level > 0 {
				level--
			}
		case t == "":
			out = append(out, "")
		default:
			out = append(out, strings.Repeat(" ", level*unit)+t)
			if strings.HasSuffix(t, ":") {
				level++
			}
		}
	}
	return out
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
