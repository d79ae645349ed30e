package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/swaggo/swag/v2"

	"langshift/internal/platform/config"
)

// InstanceName is the swag registry key of the langshift document
const InstanceName = "langshift"

//go:embed openapi.json
var baseDoc []byte

type embeddedDoc struct{}

func (embeddedDoc) ReadDoc() string { return string(baseDoc) }

func init() { swag.Register(InstanceName, embeddedDoc{}) }

// SpecMutator adjusts the parsed document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// Register adds m to every served document
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// errorExample matches the envelope phttp writes for a failed request
var errorExample = map[string]any{
	"status_code": 400,
	"status":      "Bad Request",
	"code":        4,
	"error":       "to must be a valid language identifier",
	"field":       "to",
	"request_id":  "langshift/Kx9a2-000001",
}

// Build parses raw, pins it to OAS 3.0.3 under serverURL and injects the shared
// error envelope plus default 400 and 500 responses
func Build(raw []byte, serverURL string) (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": serverURL}}
	}

	comps := child(spec, "components")
	child(comps, "schemas")["ErrorResponse"] = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"op":          map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status", "code", "error"},
	}
	child(comps, "responses")["Error"] = map[string]any{
		"description": "Error envelope",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": errorExample,
			},
		},
	}

	ref := map[string]any{"$ref": "#/components/responses/Error"}
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		ops, _ := p.(map[string]any)
		for _, op := range ops {
			o, ok := op.(map[string]any)
			if !ok {
				continue
			}
			resps := child(o, "responses")
			for _, code := range []string{"400", "500"} {
				if _, ok := resps[code]; !ok {
					resps[code] = ref
				}
			}
		}
	}

	for _, m := range mutators {
		m(spec)
	}
	return spec, nil
}

// child returns m[key] as a map, creating it when missing
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func serveDocJSON(serverURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := swag.ReadDoc(InstanceName)
		if err != nil {
			http.Error(w, "openapi document not registered", http.StatusInternalServerError)
			return
		}
		spec, err := Build([]byte(raw), serverURL)
		if err != nil {
			http.Error(w, "openapi document parse error", http.StatusInternalServerError)
			return
		}
		if v := config.New().Prefix("API_").MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			info := child(spec, "info")
			title, _ := info["title"].(string)
			info["title"] = strings.TrimSpace(title + " " + v)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}
