package servers_test

import (
	"context"
	"net/http"
	"testing"

	"orderdesk/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadContract parses and validates the committed OpenAPI document the
// server code is generated from.
func loadContract(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../api/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	return doc
}

func TestOpenAPIContract_CoversAllOperations(t *testing.T) {
	doc := loadContract(t)

	expected := map[string][]string{
		"/orders":                 {http.MethodGet, http.MethodPost},
		"/orders/{number}":        {http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete},
		"/orders/{number}/cancel": {http.MethodPost},
	}

	for path, methods := range expected {
		item := doc.Paths.Find(path)
		require.NotNil(t, item, "path %s missing from contract", path)
		for _, method := range methods {
			assert.NotNil(t, item.GetOperation(method), "%s %s missing from contract", method, path)
		}
	}
}

func TestOpenAPIContract_StatusEnumMatchesGeneratedConstants(t *testing.T) {
	doc := loadContract(t)

	schema := doc.Components.Schemas["OrderStatus"]
	require.NotNil(t, schema)

	var enum []string
	for _, value := range schema.Value.Enum {
		enum = append(enum, value.(string))
	}

	assert.ElementsMatch(t, []string{
		string(servers.Pending),
		string(servers.Processing),
		string(servers.Shipped),
		string(servers.Delivered),
		string(servers.Cancelled),
	}, enum)
}

func TestOpenAPIContract_ListParametersMatchGeneratedParams(t *testing.T) {
	doc := loadContract(t)

	operation := doc.Paths.Find("/orders").GetOperation(http.MethodGet)
	require.NotNil(t, operation)

	names := make([]string, 0, len(operation.Parameters))
	for _, parameter := range operation.Parameters {
		names = append(names, parameter.Value.Name)
	}

	assert.ElementsMatch(t, []string{"status", "page", "limit", "sortBy", "sortOrder"}, names)
}
