package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	docs "reviewtrust/internal/services/api/docs"
)

// SpecMutator adjusts the parsed spec before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator; call it during bootstrap, before Mount
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// serveDocJSON serves the spec with shared error responses filled in
func serveDocJSON(titleSuffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		if titleSuffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + titleSuffix
				}
			}
		}
		ensureErrorSchema(spec)
		addDefaultResponse(spec, "400", "Bad Request", map[string]any{
			"status_code": 400,
			"status":      "Bad Request",
			"code":        5,
			"kind":        "validation",
			"error":       "text must contain non-whitespace text",
			"field":       "text",
			"request_id":  "579f33bf50b1/abc-000001",
		})
		addDefaultResponse(spec, "500", "Internal Server Error", map[string]any{
			"status_code": 500,
			"status":      "Internal Server Error",
			"code":        1,
			"kind":        "panic",
			"error":       "panic recovered",
			"request_id":  "579f33bf50b1/abc-000001",
		})

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the spec to OAS 3.0.3, which the swagger UI renders, and sets a base server
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorSchema adds the error envelope schema when the spec lacks one
func ensureErrorSchema(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"kind":        map[string]any{"type": "string"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status", "error"},
	}
}

// addDefaultResponse gives every operation a status response unless it declares its own
func addDefaultResponse(spec map[string]any, status, desc string, example map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[status]; exists {
				continue
			}
			resps[status] = map[string]any{
				"description": desc,
				"content": map[string]any{
					"application/json": map[string]any{
						"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
						"example": example,
					},
				},
			}
		}
	}
}
