package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userDoc = `{
  "openapi": "3.0.0",
  "info": {"title": "t", "version": "1"},
  "paths": {
    "/user/{id}": {
      "parameters": [
        {"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}
      ],
      "post": {
        "parameters": [
          {"name": "email", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {"age": {"type": "integer"}},
                "required": ["age"]
              }
            }
          }
        },
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func TestFromDocument(t *testing.T) {
	doc, err := Load([]byte(userDoc))
	require.NoError(t, err)

	summary := FromDocument(doc, "cli")

	assert.Equal(t, []string{"/user/:id"}, summary.Routes)
	assert.Equal(t, []string{"cli user <id> --email <email> --age <age>"}, summary.Examples)

	require.Len(t, summary.Params, 1)
	params := summary.Params[0]
	require.Len(t, params, 3)

	assert.Equal(t, "id", params[0].Name)
	assert.Equal(t, "path", params[0].In)
	assert.True(t, params[0].Required)

	assert.Equal(t, "email", params[1].Name)
	assert.Equal(t, "query", params[1].In)
	assert.True(t, params[1].Required)

	assert.Equal(t, "age", params[2].Name)
	assert.Equal(t, "body", params[2].In)
	assert.True(t, params[2].Required)
	require.NotNil(t, params[2].Schema)
	assert.True(t, params[2].Schema.Type.Is("integer"))
}

func TestFromDocument_SkipsNonPost(t *testing.T) {
	doc, err := Load([]byte(`{
	  "openapi": "3.0.0",
	  "info": {"title": "t", "version": "1"},
	  "paths": {
	    "/only-get": {
	      "get": {"responses": {"200": {"description": "ok"}}}
	    },
	    "/with-post": {
	      "post": {"responses": {"200": {"description": "ok"}}}
	    }
	  }
	}`))
	require.NoError(t, err)

	summary := FromDocument(doc, "cli")

	assert.Equal(t, []string{"/with-post"}, summary.Routes)
	assert.Equal(t, []string{"cli with-post"}, summary.Examples)
	require.Len(t, summary.Params, 1)
	assert.Empty(t, summary.Params[0])
}

func TestFromDocument_OptionalBodyField(t *testing.T) {
	doc, err := Load([]byte(`{
	  "openapi": "3.0.0",
	  "info": {"title": "t", "version": "1"},
	  "paths": {
	    "/notes": {
	      "post": {
	        "requestBody": {
	          "content": {
	            "application/json": {
	              "schema": {
	                "type": "object",
	                "properties": {
	                  "body": {"type": "string"},
	                  "title": {"type": "string"}
	                },
	                "required": ["title"]
	              }
	            }
	          }
	        },
	        "responses": {"200": {"description": "ok"}}
	      }
	    }
	  }
	}`))
	require.NoError(t, err)

	summary := FromDocument(doc, "cli")
	require.Len(t, summary.Params, 1)
	params := summary.Params[0]
	require.Len(t, params, 2)

	// Body properties come out in sorted name order.
	assert.Equal(t, "body", params[0].Name)
	assert.False(t, params[0].Required)
	assert.Equal(t, "title", params[1].Name)
	assert.True(t, params[1].Required)
}

func TestFromDocument_NilDocument(t *testing.T) {
	summary := FromDocument(nil, "cli")
	assert.Empty(t, summary.Routes)
	assert.Empty(t, summary.Examples)
	assert.Empty(t, summary.Params)
}

func TestFromDocument_SortedPathOrder(t *testing.T) {
	doc, err := Load([]byte(`{
	  "openapi": "3.0.0",
	  "info": {"title": "t", "version": "1"},
	  "paths": {
	    "/b": {"post": {"responses": {"200": {"description": "ok"}}}},
	    "/a": {"post": {"responses": {"200": {"description": "ok"}}}}
	  }
	}`))
	require.NoError(t, err)

	summary := FromDocument(doc, "cli")
	assert.Equal(t, []string{"/a", "/b"}, summary.Routes)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load([]byte("{not json"))
	assert.Error(t, err)
}
