// Package config loads adapter options from an HCL file. The file is
// optional sugar over the programmatic options: it can set the base path
// prefix, environment overrides, and extra reserved flag names, with the
// process environment available for interpolation as the `env` object.
//
//	base = "api/v1"
//
//	env = {
//	  HOME_DIR = env.HOME
//	  TOKEN    = "static"
//	}
//
//	reserved = ["verbose"]
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cliwire/internal/envmerge"
)

// File is the decoded shape of an adapter options file.
type File struct {
	Base     string            `hcl:"base,optional"`
	Env      map[string]string `hcl:"env,optional"`
	Reserved []string          `hcl:"reserved,optional"`
}

// Load parses the options file at path. environ supplies the values exposed
// to interpolation as the `env` object variable; referencing an unset
// variable is a decode error rather than a silent empty string.
func Load(path string, environ []string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse options file %s: %w", path, diags)
	}
	return decode(hclFile, environ)
}

// Parse decodes an options file from source bytes. filename is used for
// diagnostics only.
func Parse(filename string, src []byte, environ []string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse options file %s: %w", filename, diags)
	}
	return decode(hclFile, environ)
}

func decode(hclFile *hcl.File, environ []string) (*File, error) {
	var out File
	diags := gohcl.DecodeBody(hclFile.Body, evalContext(environ), &out)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode options file: %w", diags)
	}
	return &out, nil
}

func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, entry := range environ {
		key, value := envmerge.SplitToken(entry)
		vars[key] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
