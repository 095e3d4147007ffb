package ledger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/routeledger/pkg/ctdf"
)

func TestEncodeRoutes(t *testing.T) {
	var out bytes.Buffer

	err := EncodeRoutes(&out, []*ctdf.Route{
		{Destination: "Москва", Number: "123", Time: "14:30"},
		{Destination: "A&B <C>", Number: "7", Time: "08:00"},
	})
	require.NoError(t, err)

	expected := `[
    {
        "destination": "Москва",
        "number": "123",
        "time": "14:30"
    },
    {
        "destination": "A&B <C>",
        "number": "7",
        "time": "08:00"
    }
]
`
	assert.Equal(t, expected, out.String())
}

func TestEncodeRoutesEmpty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, EncodeRoutes(&out, nil))
	assert.Equal(t, "[]\n", out.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	routes := []*ctdf.Route{
		{Destination: "Kazan", Number: "45", Time: "08:00"},
		{Destination: "Moscow", Number: "123", Time: "14:30"},
		{Destination: "Moscow", Number: "123", Time: "14:30"},
		{Destination: "Санкт-Петербург", Number: "001А", Time: "23:59"},
	}

	require.NoError(t, SaveRoutes(path, routes))

	loaded, err := LoadRoutes(path)
	require.NoError(t, err)
	assert.Equal(t, routes, loaded)
}

func TestSaveRoutesDoesNotCreateDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")

	err := SaveRoutes(path, nil)
	assert.Error(t, err)
}

func TestDecodeRoutesToleratesExtraFields(t *testing.T) {
	routes, err := DecodeRoutes(strings.NewReader(`[
		{"destination": "Kazan", "number": "45", "time": "08:00", "platform": 3}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []*ctdf.Route{{Destination: "Kazan", Number: "45", Time: "08:00"}}, routes)
}

func TestDecodeRoutesEmptyArray(t *testing.T) {
	routes, err := DecodeRoutes(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestDecodeRoutesSchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		document string
		index    int
		field    string
	}{
		{name: "object", document: `{"foo": 1}`, index: -1},
		{name: "string", document: `"routes"`, index: -1},
		{name: "null", document: `null`, index: -1},
		{name: "syntax", document: `[{"destination": `, index: -1},
		{name: "element not object", document: `[["Kazan", "45", "08:00"]]`, index: 0},
		{name: "missing time", document: `[{"destination": "Kazan", "number": "45"}]`, index: 0, field: "time"},
		{name: "missing in second", document: `[{"destination": "Kazan", "number": "45", "time": "08:00"}, {"number": "1", "time": "09:00"}]`, index: 1, field: "destination"},
		{name: "number as integer", document: `[{"destination": "Kazan", "number": 45, "time": "08:00"}]`, index: 0, field: "number"},
		{name: "time as null", document: `[{"destination": "Kazan", "number": "45", "time": null}]`, index: 0, field: "time"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			routes, err := DecodeRoutes(strings.NewReader(test.document))
			assert.Nil(t, routes)

			var schemaError *SchemaError
			require.ErrorAs(t, err, &schemaError)
			assert.Equal(t, test.index, schemaError.Index)
			assert.Equal(t, test.field, schemaError.Field)
		})
	}
}

func TestLoadRoutesMissingFile(t *testing.T) {
	_, err := LoadRoutes(filepath.Join(t.TempDir(), "nope.json"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
