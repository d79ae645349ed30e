package rewrite

import (
	"regexp"
	"strings"
)

var (
	hexColor  = regexp.MustCompile(`#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	cssBlock  = regexp.MustCompile(`([^{}]*?)([ \t]*)([^{}\s][^{}]*?)\s*\{([^{}]*)\}`)
	scssVar   = regexp.MustCompile(`(?m)^[ \t]*\$([\w-]+)\s*:\s*([^;]+);[ \t]*\n?`)
	scssDrops Rule = Pipeline{
		Sub("mixins", `@mixin\s+[\w-]+[^{]*\{[^}]*\}\s*`, ""),
		Sub("includes", `@include\s+[\w-]+[^;]*;\s*`, ""),
		Sub("extends", `@extend\s+[^;]+;\s*`, ""),
		Sub("parent selector", `&:`, ":"),
	}
)

// cssToSCSS lifts hex colors into variables declared at the top and
// re-lays each innermost rule one declaration per line
func cssToSCSS(text string) (string, error) {
	var names []string
	seen := map[string]bool{}
	out := hexColor.ReplaceAllStringFunc(text, func(c string) string {
		hex := strings.ToLower(c[1:])
		if !seen[hex] {
			seen[hex] = true
			names = append(names, hex)
		}
		return "$color-" + hex
	})

	out = replaceFunc(cssBlock, out, func(m []string) string {
		var decls []string
		for _, d := range strings.Split(m[4], ";") {
			if d = strings.TrimSpace(d); d != "" {
				decls = append(decls, m[2]+"  "+d+";")
			}
		}
		body := strings.Join(decls, "\n")
		if body != "" {
			body += "\n"
		}
		return m[1] + m[2] + strings.TrimSpace(m[3]) + " {\n" + body + m[2] + "}"
	})

	if len(names) == 0 {
		return out, nil
	}
	var b strings.Builder
	for _, hex := range names {
		b.WriteString("$color-" + hex + ": #" + hex + ";\n")
	}
	b.WriteString("\n")
	b.WriteString(out)
	return b.String(), nil
}

// scssToCSS inlines variables and drops mixins, includes and extends.
// Nesting is not flattened.
func scssToCSS(text string) (string, error) {
	vars := map[string]string{}
	var order []string
	out := replaceFunc(scssVar, text, func(m []string) string {
		name, val := m[1], inlineVars(strings.TrimSpace(m[2]), vars, order)
		if _, ok := vars[name]; !ok {
			order = append(order, name)
		}
		vars[name] = val
		return ""
	})
	out = inlineVars(out, vars, order)
	out, err := scssDrops.Rewrite(out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// inlineVars replaces whole $name references; $pad does not match $pad-x
func inlineVars(text string, vars map[string]string, order []string) string {
	for _, n := range order {
		re := regexp.MustCompile(`\$` + regexp.QuoteMeta(n) + `(?:[^\w-]|$)`)
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			return vars[n] + m[len(n)+1:]
		})
	}
	return text
}
