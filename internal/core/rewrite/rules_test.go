package rewrite

import (
	"errors"
	"strings"
	"testing"

	"langshift/internal/core/codec"
	"langshift/internal/platform/testkit"
)

func rewrite(t *testing.T, p Pair, in string) string {
	t.Helper()
	rule, _, ok := Default().Lookup(p)
	if !ok {
		t.Fatalf("no rule for %s", p)
	}
	out, err := rule.Rewrite(in)
	if err != nil {
		t.Fatalf("%s: %v", p, err)
	}
	return out
}

func TestRules_Exact(t *testing.T) {
	cases := []struct {
		name string
		pair Pair
		in   string
		want string
	}{
		{
			"ts annotations",
			Pair{"typescript", "javascript"},
			"function greet(user: User): string {\n  return user.name;\n}",
			"function greet(user) {\n  return user.name;\n}",
		},
		{
			"ts declarations",
			Pair{"typescript", "javascript"},
			"interface User {\n  name: string;\n}\nconst u = x as User;",
			"const u = x;",
		},
		{
			"js declarations",
			Pair{"javascript", "typescript"},
			"let count = 0;\nconst add = (a, b) => a + b;",
			"let count: any = 0;\nconst add = (a: any, b: any): any => a + b;",
		},
		{
			"python blocks",
			Pair{"python", "javascript"},
			"def greet(name):\n    if name:\n        print(\"hi \" + name)\n    else:\n        print(\"nobody\")",
			"function greet(name) {\n    if (name) {\n        console.log(\"hi \" + name)\n    }\n    else {\n        console.log(\"nobody\")\n    }\n}",
		},
		{
			"python loops and literals",
			Pair{"python", "javascript"},
			"# loop\nfor x in items:\n    while x > 0:\n        x = None",
			"// loop\nfor (let x of items) {\n    while (x > 0) {\n        x = null\n    }\n}",
		},
		{
			"js to python",
			Pair{"javascript", "python"},
			"function greet(name) {\n    if (name) {\n        console.log(\"hi \" + name);\n    } else {\n        console.log(\"nobody\");\n    }\n}",
			"def greet(name):\n    if name:\n        print(\"hi \" + name)\n    else:\n        print(\"nobody\")",
		},
		{
			"js try catch",
			Pair{"javascript", "python"},
			"try {\n    let ok = true;\n} catch (err) {\n    console.log(err);\n}",
			"try:\n    ok = True\nexcept Exception as err:\n    print(err)",
		},
		{
			"java class",
			Pair{"java", "kotlin"},
			"public class Greeter {\n    public String greet(String name) {\n        String msg = \"Hello \" + name;\n        return msg;\n    }\n}",
			"class Greeter {\n    fun greet(name: String): String {\n        var msg: String = \"Hello \" + name\n        return msg\n    }\n}",
		},
		{
			"java main",
			Pair{"java", "kotlin"},
			"public static void main(String[] args) {\n    System.out.println(\"hi\");\n}",
			"fun main(args: Array<String>) {\n    println(\"hi\")\n}",
		},
		{
			"java private method",
			Pair{"java", "kotlin"},
			"private int add(int a, int b) {\n    final int sum = a + b;\n    return sum;\n}",
			"private fun add(a: Int, b: Int): Int {\n    val sum: Int = a + b\n    return sum\n}",
		},
		{
			"css variables",
			Pair{"css", "scss"},
			"body { color: #333; background: #FFF; }\n.a { color: #333; }",
			"$color-333: #333;\n$color-fff: #fff;\n\nbody {\n  color: $color-333;\n  background: $color-fff;\n}\n.a {\n  color: $color-333;\n}",
		},
		{
			"css nested media",
			Pair{"css", "scss"},
			"@media screen {\n  div { padding: 4px; }\n}",
			"@media screen {\n  div {\n    padding: 4px;\n  }\n}",
		},
		{
			"scss inline",
			Pair{"scss", "css"},
			"$primary: #333;\n$pad: 4px;\n@mixin rounded { border-radius: 4px; }\n.btn {\n  color: $primary;\n  padding: $pad;\n  @include rounded;\n  &:hover { color: red; }\n}",
			".btn {\n  color: #333;\n  padding: 4px;\n  :hover { color: red; }\n}",
		},
		{
			"scss chained variables",
			Pair{"scss", "css"},
			"$base: 4px;\n$pad: $base;\n$pad-x: 8px;\n.a { margin: $pad $pad-x; }",
			".a { margin: 4px 8px; }",
		},
		{
			"html attributes",
			Pair{"html", "jsx"},
			`<label for="a" class="x">Name</label><input id="a" type="checkbox" checked disabled><br>`,
			`<label htmlFor="a" className="x">Name</label><input id="a" type="checkbox" checked={true} disabled={true} /><br />`,
		},
		{
			"html style",
			Pair{"html", "jsx"},
			`<div style="font-size: 12px; color: red" class="hidden">x</div>`,
			`<div style={{fontSize: '12px', color: 'red'}} className="hidden">x</div>`,
		},
		{
			"jsx attributes",
			Pair{"jsx", "html"},
			`<label htmlFor="a" className="x">{name}</label><input checked={true} onChange={() => f()} /><br />`,
			`<label for="a" class="x"></label><input checked><br>`,
		},
		{
			"jsx style",
			Pair{"jsx", "html"},
			`<div style={{fontSize: '12px', color: 'red'}}>x</div>`,
			`<div style="font-size: 12px; color: red">x</div>`,
		},
		{
			"dockerfile",
			Pair{"dockerfile", "bash"},
			"FROM node:18\nWORKDIR /app\nCOPY --chown=node package.json .\nRUN npm install && \\\n    npm run build\nENV PORT 3000\nEXPOSE 3000\nCMD [\"node\", \"server.js\"]",
			"#!/bin/bash\n\n# Base image: node:18\nmkdir -p /app && cd /app\ncp package.json .\nnpm install && npm run build\nexport PORT=3000\n# Expose port: 3000\n# Default command: [\"node\", \"server.js\"]\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rewrite(t, tc.pair, tc.in); got != tc.want {
				t.Fatalf("got:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestRules_JavaToCSharp(t *testing.T) {
	in := "package com.example;\n\nimport java.util.List;\n\npublic class App {\n    public static void main(String[] args) {\n        boolean ok = true;\n        System.out.println(\"hi\");\n    }\n}"
	out := rewrite(t, Pair{"java", "csharp"}, in)
	for _, want := range []string{
		"namespace com.example {",
		"using java.util.List;",
		"public static void Main(string[] args)",
		"bool ok = true;",
		`Console.WriteLine("hi");`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}\n}") {
		t.Fatalf("namespace not closed:\n%s", out)
	}

	if out := rewrite(t, Pair{"java", "csharp"}, "String s = x;"); out != "string s = x;" {
		t.Fatalf("no package: %q", out)
	}
}

func TestRules_SCSSToCSSPropagatesDropFailure(t *testing.T) {
	testkit.Swap(t, &scssDrops, Rule(RuleFunc(func(string) (string, error) {
		return "partial", errors.New("drops failed")
	})))

	out, err := scssToCSS("$c: #fff;\na { color: $c; }")
	if err == nil || err.Error() != "drops failed" {
		t.Fatalf("err = %v", err)
	}
	if out != "" {
		t.Fatalf("partial output %q", out)
	}
}

func TestRules_SQLToJSON(t *testing.T) {
	in := "CREATE TABLE users (\n  id INT,\n  email VARCHAR(255) NOT NULL,\n  note,\n  PRIMARY KEY (id)\n);"
	out := rewrite(t, Pair{"sql", "json"}, in)
	doc, err := codec.DecodeJSON(out)
	if err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	db, _ := doc.Get("database")
	tables, _ := db.Get("tables")
	users, ok := tables.Get("users")
	if !ok {
		t.Fatalf("users table missing:\n%s", out)
	}
	if typ, _ := users.Get("type"); typ.Text != "table" {
		t.Fatalf("type = %v", typ)
	}
	cols, _ := users.Get("columns")
	if len(cols.Items) != 3 {
		t.Fatalf("columns = %d, want 3:\n%s", len(cols.Items), out)
	}
	want := []struct{ name, typ, cons string }{
		{"id", "INT", ""},
		{"email", "VARCHAR(255)", "NOT NULL"},
		{"note", "VARCHAR", ""},
	}
	for i, w := range want {
		name, _ := cols.Items[i].Get("name")
		typ, _ := cols.Items[i].Get("type")
		cons, _ := cols.Items[i].Get("constraints")
		if name.Text != w.name || typ.Text != w.typ {
			t.Fatalf("column %d = %s %s", i, name.Text, typ.Text)
		}
		if w.cons == "" && cons.Kind != codec.KindNull {
			t.Fatalf("column %d constraints = %v, want null", i, cons)
		}
		if w.cons != "" && cons.Text != w.cons {
			t.Fatalf("column %d constraints = %q", i, cons.Text)
		}
	}
	tc, _ := users.Get("constraints")
	if len(tc.Items) != 1 || tc.Items[0].Text != "PRIMARY KEY (id)" {
		t.Fatalf("table constraints = %v", tc)
	}

	empty := rewrite(t, Pair{"sql", "json"}, "SELECT 1;")
	if empty != "{\n  \"database\": {\n    \"tables\": {}\n  }\n}" {
		t.Fatalf("empty = %q", empty)
	}
}

func TestBlocks(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		unit int
		want []string
	}{
		{"unit 2", []string{"a {", "  b", "c"}, 2, []string{"a {", "  b", "}", "c"}},
		{"blank lines stay after brace", []string{"a {", "    b", "", "c"}, 4, []string{"a {", "    b", "}", "", "c"}},
		{"closes at end", []string{"a {", "    b {", "        c", ""}, 4, []string{"a {", "    b {", "        c", "    }", "}", ""}},
		{"first line is the floor", []string{"    a {", "        b"}, 4, []string{"    a {", "        b", "    }"}},
		{"no headers", []string{"a", "    b", "c"}, 4, []string{"a", "    b", "c"}},
		{"zero unit uses default", []string{"a {", "    b"}, 0, []string{"a {", "    b", "}"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Blocks(tc.in, tc.unit)
			if strings.Join(got, "\n") != strings.Join(tc.want, "\n") {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnblocks(t *testing.T) {
	got := Unblocks([]string{"def f():", "if x:", "y", "}", "z", "}"}, 2)
	want := []string{"def f():", "  if x:", "    y", "  z"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIndentUnitOption(t *testing.T) {
	rule, _, _ := Default(WithIndentUnit(2)).Lookup(Pair{"python", "javascript"})
	out, _ := rule.Rewrite("def f():\n  return 1")
	if out != "function f() {\n  return 1\n}" {
		t.Fatalf("got %q", out)
	}
}
