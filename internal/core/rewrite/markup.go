package rewrite

import (
	"regexp"
	"strings"
)

const voidTags = `area|base|br|col|embed|hr|img|input|link|meta|param|source|track|wbr`

var (
	openTag  = regexp.MustCompile(`<[A-Za-z][\w.-]*(?:\s[^<>]*)?>`)
	tagAttr  = regexp.MustCompile(`(\s)([A-Za-z_:@][-\w:.]*)(\s*=\s*(?:"[^"]*"|'[^']*'|\{[^}]*\}|[^\s"'=<>` + "`" + `/]+))?`)
	boolAttr = map[string]bool{
		"checked": true, "disabled": true, "hidden": true,
		"readonly": true, "required": true, "selected": true,
	}
)

// styleObject turns "font-size: 12px; color: red" into {fontSize: '12px', color: 'red'}
func styleObject(css string) string {
	var props []string
	for _, decl := range strings.Split(css, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(k) == "" {
			continue
		}
		v = strings.ReplaceAll(strings.TrimSpace(v), "'", `\'`)
		props = append(props, camel(strings.TrimSpace(k))+": '"+v+"'")
	}
	return "{{" + strings.Join(props, ", ") + "}}"
}

func camel(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func kebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cssText turns fontSize: '12px', color: 'red' into "font-size: 12px; color: red"
func cssText(obj string) string {
	var decls []string
	for _, prop := range strings.Split(obj, ",") {
		k, v, ok := strings.Cut(prop, ":")
		if !ok {
			continue
		}
		k = strings.Trim(strings.TrimSpace(k), `'"`)
		v = strings.Trim(strings.TrimSpace(v), `'"`)
		decls = append(decls, kebab(k)+": "+v)
	}
	return strings.Join(decls, "; ")
}

// booleanAttrs rewrites bare boolean attributes inside opening tags
func booleanAttrs(m []string) string {
	return replaceFunc(tagAttr, m[0], func(a []string) string {
		if a[3] == "" && boolAttr[strings.ToLower(a[2])] {
			return a[1] + strings.ToLower(a[2]) + "={true}"
		}
		return a[0]
	})
}

var htmlToJSX = Pipeline{
	Sub("comments", `<!--([\s\S]*?)-->`, "{/*$1*/}"),
	Sub("class", `(\s)class=`, "${1}className="),
	Sub("for", `(\s)for=`, "${1}htmlFor="),
	SubFunc("style", `(\s)style="([^"]*)"`, func(m []string) string {
		return m[1] + "style=" + styleObject(m[2])
	}),
	SubFunc("boolean attributes", openTag.String(), booleanAttrs),
	Sub("void tags", `(?i)<(`+voidTags+`)\b([^<>]*?)\s*/?>`, "<$1$2 />"),
}

var jsxToHTML = Pipeline{
	Sub("className", `(\s)className=`, "${1}class="),
	Sub("htmlFor", `(\s)htmlFor=`, "${1}for="),
	SubFunc("style", `(\s)style=\{\{([^}]*)\}\}`, func(m []string) string {
		return m[1] + `style="` + cssText(m[2]) + `"`
	}),
	Sub("true attributes", `(\s[A-Za-z-]+)=\{true\}`, "$1"),
	Sub("comments", `\{/\*([\s\S]*?)\*/\}`, "<!--$1-->"),
	Sub("expression attributes", `\s[A-Za-z][\w-]*=\{[^{}]*\}`, ""),
	Sub("expressions", `\{[^{}]*\}`, ""),
	Sub("void tags", `(?i)<(`+voidTags+`)\b([^<>]*?)\s*/>`, "<$1$2>"),
}
