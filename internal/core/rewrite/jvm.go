package rewrite

import (
	"regexp"
	"strings"
)

var kotlinTypes = map[string]string{
	"int":     "Int",
	"long":    "Long",
	"short":   "Short",
	"byte":    "Byte",
	"double":  "Double",
	"float":   "Float",
	"boolean": "Boolean",
	"char":    "Char",
	"void":    "Unit",
	"Integer": "Int",
	"Object":  "Any",
}

func kotlinType(t string) string {
	if strings.HasSuffix(t, "[]") {
		return "Array<" + kotlinType(strings.TrimSuffix(t, "[]")) + ">"
	}
	if k, ok := kotlinTypes[t]; ok {
		return k
	}
	return t
}

// kotlinParams turns "int a, String b" into "a: Int, b: String"
func kotlinParams(list string) string {
	params := splitList(list)
	for i, p := range params {
		f := strings.Fields(strings.TrimPrefix(p, "final "))
		if len(f) >= 2 {
			params[i] = f[len(f)-1] + ": " + kotlinType(strings.Join(f[:len(f)-1], ""))
		}
	}
	return strings.Join(params, ", ")
}

func kotlinFun(prefix string) func(m []string) string {
	return func(m []string) string {
		sig := prefix + "fun " + m[2] + "(" + kotlinParams(m[3]) + ")"
		if m[1] != "void" {
			sig += ": " + kotlinType(m[1])
		}
		return sig
	}
}

var javaToKotlin = Pipeline{
	Sub("main", `public\s+static\s+void\s+main\s*\(\s*String\s*(?:\[\]\s*\w+|\w+\s*\[\])\s*\)`, "fun main(args: Array<String>)"),
	Sub("class", `public\s+class\s+(\w+)`, "class $1"),
	SubFunc("public method", `public\s+(?:static\s+)?([\w\[\]<>]+)\s+(\w+)\s*\(([^)]*)\)`, kotlinFun("")),
	SubFunc("private method", `private\s+(?:static\s+)?([\w\[\]<>]+)\s+(\w+)\s*\(([^)]*)\)`, kotlinFun("private ")),
	Sub("println", `System\.out\.println\s*\(`, "println("),
	Sub("print", `System\.out\.print\s*\(`, "print("),
	SubFunc("local", `(?m)^([ \t]*)(final\s+)?([A-Za-z_][\w\[\]<>]*)\s+(\w+)\s*=\s*([^;\n]+);`, func(m []string) string {
		switch m[3] {
		case "return", "throw", "else", "new":
			return m[0]
		}
		kw := "var "
		if m[2] != "" {
			kw = "val "
		}
		return m[1] + kw + m[4] + ": " + kotlinType(m[3]) + " = " + m[5]
	}),
	Sub("new", `\bnew\s+(\w+)\s*\(`, "$1("),
	Sub("semicolons", `(?m);[ \t]*$`, ""),
}

var javaToCSharpSteps = Pipeline{
	Sub("package", `\bpackage\s+([\w.]+)\s*;`, "namespace $1 {"),
	Sub("import", `(?m)^([ \t]*)import\s+(?:static\s+)?([\w.]+?)(?:\.\*)?\s*;`, "${1}using $2;"),
	Sub("main", `\bstatic\s+void\s+main\s*\(`, "static void Main("),
	Sub("println", `System\.out\.println\s*\(`, "Console.WriteLine("),
	Sub("print", `System\.out\.print\s*\(`, "Console.Write("),
	Sub("String", `\bString\b`, "string"),
	Sub("boolean", `\bboolean\b`, "bool"),
	Sub("Override", `@Override\s*\n(\s*)public\s+`, "${1}public override "),
}

var javaToCSharp = RuleFunc(func(text string) (string, error) {
	out, err := javaToCSharpSteps.Rewrite(text)
	if err != nil {
		return "", err
	}
	if javaPackage.MatchString(text) {
		out += "\n}"
	}
	return out, nil
})

var javaPackage = regexp.MustCompile(`\bpackage\s+[\w.]+\s*;`)
