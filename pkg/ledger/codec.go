package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/liip/sheriff"
	"github.com/travigo/routeledger/pkg/ctdf"
)

const fileGroup = "file"

var routeFields = []string{"destination", "number", "time"}

func SaveRoutes(path string, routes []*ctdf.Route) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodeRoutes(file, routes); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// EncodeRoutes writes routes as an indented JSON array holding only the
// fields that belong in a routes file. Non-ASCII text is written as is.
func EncodeRoutes(w io.Writer, routes []*ctdf.Route) error {
	documents := make([]interface{}, 0, len(routes))

	for _, route := range routes {
		document, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{fileGroup},
		}, route)
		if err != nil {
			return err
		}

		documents = append(documents, document)
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	return encoder.Encode(documents)
}

func LoadRoutes(path string) ([]*ctdf.Route, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeRoutes(file)
}

// DecodeRoutes reads a JSON array of route objects. Every element must carry
// destination, number and time as strings; anything else on an element is
// ignored. Structural problems are reported as *SchemaError.
func DecodeRoutes(r io.Reader) ([]*ctdf.Route, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var document interface{}
	if err := json.Unmarshal(content, &document); err != nil {
		return nil, &SchemaError{Index: -1, Reason: fmt.Sprintf("not valid JSON (%s)", err)}
	}

	elements, ok := document.([]interface{})
	if !ok {
		return nil, &SchemaError{Index: -1, Reason: "expected a JSON array of routes"}
	}

	routes := make([]*ctdf.Route, 0, len(elements))

	for index, element := range elements {
		object, ok := element.(map[string]interface{})
		if !ok {
			return nil, &SchemaError{Index: index, Reason: "is not an object"}
		}

		values := map[string]string{}
		for _, field := range routeFields {
			value, exists := object[field]
			if !exists {
				return nil, &SchemaError{Index: index, Field: field, Reason: "is missing"}
			}

			text, ok := value.(string)
			if !ok {
				return nil, &SchemaError{Index: index, Field: field, Reason: "is not a string"}
			}

			values[field] = text
		}

		routes = append(routes, &ctdf.Route{
			Destination: values["destination"],
			Number:      values["number"],
			Time:        values["time"],
		})
	}

	return routes, nil
}
