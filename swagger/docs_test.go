package swagger_test

import (
	"encoding/json"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/Astemirdum/bookreview-service/swagger"
)

var refRe = regexp.MustCompile(`"#/definitions/([^"]+)"`)

func TestDocs_Rendered(t *testing.T) {
	doc, err := swag.ReadDoc(swagger.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		BasePath    string                     `json:"basePath"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	require.Equal(t, "/api/v1", spec.BasePath)
	for _, path := range []string{"/books", "/reviews", "/reviews/{id}", "/suggest-by-genre", "/suggest-by-author", "/suggest-by-related-users"} {
		require.Contains(t, spec.Paths, path)
	}
	for _, m := range refRe.FindAllStringSubmatch(doc, -1) {
		require.Contains(t, spec.Definitions, m[1])
	}
}

func TestDocs_MatchesJSON(t *testing.T) {
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	doc, err := swag.ReadDoc(swagger.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var fromFile, fromTemplate map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fromFile))
	require.NoError(t, json.Unmarshal([]byte(doc), &fromTemplate))
	require.Equal(t, fromFile["paths"], fromTemplate["paths"])
	require.Equal(t, fromFile["definitions"], fromTemplate["definitions"])
}
