// Package openapi derives routes, command examples, and parameter
// descriptors from an OpenAPI document, as an alternative to introspecting a
// live handler. Only path entries carrying a post operation are considered.
package openapi

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/vk/cliwire/internal/introspect"
)

// Param describes one route parameter, drawn from the path/query parameter
// lists or from the JSON request-body schema properties.
type Param struct {
	Name        string
	In          string // "path", "query", or "body"
	Required    bool
	Description string
	Schema      *openapi3.Schema
}

// Summary holds the parallel results of introspecting a document: for every
// route, its normalized path, one invocation example, and its parameters.
type Summary struct {
	Routes   []string
	Examples []string
	Params   [][]Param
}

// Load parses an OpenAPI document from raw JSON or YAML bytes.
func Load(data []byte) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	return doc, nil
}

// LoadFile parses an OpenAPI document from a JSON or YAML file.
func LoadFile(path string) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document %q: %w", path, err)
	}
	return doc, nil
}

// FromDocument introspects every post-bearing path of the document. Paths
// are visited in sorted order so the output is deterministic. Parameter
// order per route is: path-item level parameters, then operation-level
// parameters (both in declaration order), then body schema properties in
// sorted name order.
func FromDocument(doc *openapi3.T, commandBase string) *Summary {
	summary := &Summary{}
	if doc == nil || doc.Paths == nil {
		return summary
	}

	pathMap := doc.Paths.Map()
	keys := make([]string, 0, len(pathMap))
	for key := range pathMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		item := pathMap[key]
		if item == nil || item.Post == nil {
			continue
		}

		route := introspect.NormalizePath(key)
		params := collectParams(item)

		summary.Routes = append(summary.Routes, route)
		summary.Examples = append(summary.Examples, buildExample(route, commandBase, params))
		summary.Params = append(summary.Params, params)
	}
	return summary
}

func collectParams(item *openapi3.PathItem) []Param {
	var params []Param
	params = appendParamRefs(params, item.Parameters)
	params = appendParamRefs(params, item.Post.Parameters)
	return append(params, bodyParams(item.Post.RequestBody)...)
}

func appendParamRefs(params []Param, refs openapi3.Parameters) []Param {
	for _, ref := range refs {
		if ref == nil || ref.Value == nil {
			continue
		}
		p := Param{
			Name:        ref.Value.Name,
			In:          ref.Value.In,
			Required:    ref.Value.Required,
			Description: ref.Value.Description,
		}
		if ref.Value.Schema != nil {
			p.Schema = ref.Value.Schema.Value
		}
		params = append(params, p)
	}
	return params
}

// bodyParams flattens a JSON request-body object schema into one descriptor
// per property.
func bodyParams(ref *openapi3.RequestBodyRef) []Param {
	if ref == nil || ref.Value == nil {
		return nil
	}
	media := ref.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil
	}
	schema := media.Schema.Value
	if !schema.Type.Is(openapi3.TypeObject) || len(schema.Properties) == 0 {
		return nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]Param, 0, len(names))
	for _, name := range names {
		p := Param{Name: name, In: "body", Required: required[name]}
		if prop := schema.Properties[name]; prop != nil {
			p.Schema = prop.Value
			if prop.Value != nil {
				p.Description = prop.Value.Description
			}
		}
		params = append(params, p)
	}
	return params
}

// buildExample renders the invocation example for one route: the command
// base, the placeholder-substituted path segments, then one
// "--<name> <<name>>" token per non-path parameter. Path parameters are
// already embedded positionally.
func buildExample(route, commandBase string, params []Param) string {
	example := introspect.BuildExample(route, commandBase)
	for _, p := range params {
		if p.In == "path" {
			continue
		}
		example += " --" + p.Name + " <" + p.Name + ">"
	}
	return example
}
