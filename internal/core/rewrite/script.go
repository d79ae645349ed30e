package rewrite

import "strings"

// typeParams annotates untyped parameters with any
func typeParams(list string) string {
	params := splitList(list)
	for i, p := range params {
		if !strings.Contains(p, ":") {
			params[i] = p + ": any"
		}
	}
	return strings.Join(params, ", ")
}

func annotateDecl(m []string) string {
	if strings.Contains(m[0], ":") {
		return m[0]
	}
	return m[1] + " " + m[2] + ": any = " + m[3] + ";"
}

var jsToTS = Pipeline{
	SubFunc("function signature", `function\s+(\w+)\s*\(([^)]*)\)`, func(m []string) string {
		return "function " + m[1] + "(" + typeParams(m[2]) + "): any"
	}),
	SubFunc("arrow signature", `const\s+(\w+)\s*=\s*\(([^)]*)\)\s*=>`, func(m []string) string {
		return "const " + m[1] + " = (" + typeParams(m[2]) + "): any =>"
	}),
	SubFunc("variable annotation", `\b(let|const)\s+(\w+)\s*=\s*([^;]+);`, annotateDecl),
}

var tsToJS = Pipeline{
	Sub("type annotations", `:\s*[^,)=\s{;]+`, ""),
	Sub("interfaces", `interface\s+\w+\s*\{[^}]*\}\s*`, ""),
	Sub("type aliases", `type\s+\w+\s*=\s*[^;]+;\s*`, ""),
	Sub("type imports", `import\s+type\s+\{[^}]*\}\s+from\s+[^;]+;\s*`, ""),
	Sub("assertions", `\s+as\s+\w+`, ""),
	Sub("generics", `<[^<>\n]+>`, ""),
	Sub("enums", `enum\s+\w+\s*\{[^}]*\}\s*`, ""),
}

var pyToJSSteps = Pipeline{
	Sub("comments", `(?m)^([ \t]*)#\s?`, "$1// "),
	Sub("def", `\bdef\s+(\w+)\s*\(([^)]*)\)\s*(?:->\s*[^:\n]+)?:`, "function $1($2) {"),
	Sub("print", `\bprint\s*\(([^)]*)\)`, "console.log($1)"),
	Sub("elif", `\belif\s+([^:\n]+):`, "else if ($1) {"),
	Sub("if", `(?m)^([ \t]*)if\s+([^:\n]+):`, "${1}if ($2) {"),
	Sub("else", `\belse\s*:`, "else {"),
	Sub("for", `\bfor\s+(\w+)\s+in\s+([^:\n]+):`, "for (let $1 of $2) {"),
	Sub("while", `\bwhile\s+([^:\n]+):`, "while ($1) {"),
	Sub("try", `\btry\s*:`, "try {"),
	Sub("finally", `\bfinally\s*:`, "finally {"),
	SubFunc("except", `\bexcept\b\s*([^:\n]*):`, func(m []string) string {
		name := strings.TrimSpace(m[1])
		if i := strings.LastIndex(name, " as "); i >= 0 {
			name = strings.TrimSpace(name[i+4:])
		}
		if name == "" {
			name = "error"
		}
		return "catch (" + name + ") {"
	}),
	SubFunc("class", `\bclass\s+(\w+)\s*(?:\(([^)]*)\))?:`, func(m []string) string {
		if base := strings.TrimSpace(m[2]); base != "" && base != "object" {
			return "class " + m[1] + " extends " + base + " {"
		}
		return "class " + m[1] + " {"
	}),
	Sub("True", `\bTrue\b`, "true"),
	Sub("False", `\bFalse\b`, "false"),
	Sub("None", `\bNone\b`, "null"),
}

func pythonToJS(unit int) Rule {
	return pyToJSSteps.Then(func(s string) string {
		return strings.Join(Blocks(strings.Split(s, "\n"), unit), "\n")
	})
}

var jsToPySteps = Pipeline{
	Sub("split closers", `\}[ \t]*(else|catch|finally)\b`, "}\n$1"),
	Sub("comments", `(?m)^([ \t]*)//\s?`, "$1# "),
	Sub("function", `\bfunction\s+(\w+)\s*\(([^)]*)\)\s*\{`, "def $1($2):"),
	Sub("arrow", `\b(?:const|let|var)\s+(\w+)\s*=\s*\(([^)]*)\)\s*=>\s*\{`, "def $1($2):"),
	Sub("console.log", `\bconsole\.log\s*\(([^)]*)\)`, "print($1)"),
	Sub("else if", `\belse\s+if\s*\((.+)\)\s*\{`, "elif $1:"),
	Sub("if", `\bif\s*\((.+)\)\s*\{`, "if $1:"),
	Sub("else", `\belse\s*\{`, "else:"),
	Sub("for of", `\bfor\s*\(\s*(?:let|const|var)\s+(\w+)\s+of\s+([^)]+)\)\s*\{`, "for $1 in $2:"),
	Sub("while", `\bwhile\s*\((.+)\)\s*\{`, "while $1:"),
	Sub("try", `\btry\s*\{`, "try:"),
	SubFunc("catch", `\bcatch\s*(?:\(([^)]*)\))?\s*\{`, func(m []string) string {
		if name := strings.TrimSpace(m[1]); name != "" {
			return "except Exception as " + name + ":"
		}
		return "except Exception:"
	}),
	Sub("finally", `\bfinally\s*\{`, "finally:"),
	Sub("declarations", `\b(?:let|const|var)\s+(\w+)\s*=`, "$1 ="),
	Sub("true", `\btrue\b`, "True"),
	Sub("false", `\bfalse\b`, "False"),
	Sub("null", `\b(?:null|undefined)\b`, "None"),
	Sub("and", `\s*&&\s*`, " and "),
	Sub("or", `\s*\|\|\s*`, " or "),
	Sub("strict equality", `([!=])==`, "$1="),
	Sub("semicolons", `(?m);[ \t]*$`, ""),
}

func jsToPython(unit int) Rule {
	return jsToPySteps.Then(func(s string) string {
		return strings.Join(Unblocks(strings.Split(s, "\n"), unit), "\n")
	})
}
