package rewrite

import (
	"regexp"
	"strings"

	"langshift/internal/core/codec"
)

var (
	createTable   = regexp.MustCompile("(?i)\\bCREATE\\s+TABLE\\s+(?:IF\\s+NOT\\s+EXISTS\\s+)?([\\w.\"`\\[\\]]+)\\s*\\(")
	tableKeywords = map[string]bool{
		"PRIMARY": true, "FOREIGN": true, "UNIQUE": true, "CONSTRAINT": true,
		"CHECK": true, "KEY": true, "INDEX": true,
	}
)

// sqlToJSON describes every CREATE TABLE statement as a JSON document of
// the shape {database: {tables: {name: {columns: [...], type: "table"}}}}
func sqlToJSON(text string) (string, error) {
	tables := codec.Map()
	for _, loc := range createTable.FindAllStringSubmatchIndex(text, -1) {
		name := unquoteIdent(text[loc[2]:loc[3]])
		body, ok := parenBody(text, loc[1])
		if !ok {
			continue
		}

		cols := codec.Seq()
		var constraints []codec.Value
		for _, def := range splitTopLevel(body) {
			f := strings.Fields(def)
			if len(f) == 0 {
				continue
			}
			if tableKeywords[strings.ToUpper(f[0])] {
				constraints = append(constraints, codec.String(strings.Join(f, " ")))
				continue
			}
			col := codec.Map(codec.Member{Key: "name", Value: codec.String(unquoteIdent(f[0]))})
			typ := "VARCHAR"
			if len(f) > 1 {
				typ = strings.ToUpper(f[1])
			}
			col.Set("type", codec.String(typ))
			if len(f) > 2 {
				col.Set("constraints", codec.String(strings.Join(f[2:], " ")))
			} else {
				col.Set("constraints", codec.Null())
			}
			cols.Items = append(cols.Items, col)
		}

		table := codec.Map(codec.Member{Key: "columns", Value: cols})
		if len(constraints) > 0 {
			table.Set("constraints", codec.Seq(constraints...))
		}
		table.Set("type", codec.String("table"))
		tables.Set(name, table)
	}
	doc := codec.Map(codec.Member{Key: "database", Value: codec.Map(codec.Member{Key: "tables", Value: tables})})
	return codec.EncodeJSON(doc), nil
}

// parenBody returns the text between the "(" ending at open and its match
func parenBody(text string, open int) (string, bool) {
	depth := 1
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return text[open:i], true
			}
		}
	}
	return "", false
}

// splitTopLevel splits on commas outside parentheses
func splitTopLevel(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

func unquoteIdent(s string) string {
	return strings.Trim(s, "\"`[]")
}

// dockerfileToBash maps each instruction to the shell step it stands for.
// Continuation lines are joined first.
func dockerfileToBash(text string) (string, error) {
	text = strings.ReplaceAll(text, "\\\r\n", " ")
	text = strings.ReplaceAll(text, "\\\n", " ")

	var b strings.Builder
	b.WriteString("#!/bin/bash\n\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			b.WriteString(line + "\n")
			continue
		}
		instr, args, _ := strings.Cut(line, " ")
		args = strings.Join(strings.Fields(args), " ")
		switch strings.ToUpper(instr) {
		case "FROM":
			b.WriteString("# Base image: " + args + "\n")
		case "RUN":
			b.WriteString(args + "\n")
		case "COPY", "ADD":
			b.WriteString("cp " + dropFlags(args) + "\n")
		case "WORKDIR":
			b.WriteString("mkdir -p " + args + " && cd " + args + "\n")
		case "ENV":
			b.WriteString("export " + envAssign(args) + "\n")
		case "ARG":
			b.WriteString(": \"${" + strings.Replace(args, "=", ":=", 1) + "}\"\n")
		case "EXPOSE":
			b.WriteString("# Expose port: " + args + "\n")
		case "CMD":
			b.WriteString("# Default command: " + args + "\n")
		case "ENTRYPOINT":
			b.WriteString("# Entry point: " + args + "\n")
		case "USER":
			b.WriteString("# Run as user: " + args + "\n")
		default:
			b.WriteString("# " + line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// dropFlags removes --chown= style options from COPY/ADD
func dropFlags(args string) string {
	f := strings.Fields(args)
	out := f[:0]
	for _, a := range f {
		if !strings.HasPrefix(a, "--") {
			out = append(out, a)
		}
	}
	return strings.Join(out, " ")
}

// envAssign accepts both "KEY value" and "KEY=value" forms
func envAssign(args string) string {
	if strings.Contains(args, "=") {
		return args
	}
	k, v, ok := strings.Cut(args, " ")
	if !ok {
		return k + "="
	}
	return k + "=" + v
}
