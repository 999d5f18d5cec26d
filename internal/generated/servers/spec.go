package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// SpecJSON is the OpenAPI document served by /swagger and used for request validation.
//
//go:embed openapi.json
var SpecJSON []byte

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(SpecJSON)
	if err != nil {
		return nil, fmt.Errorf("error loading spec: %w", err)
	}

	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating spec: %w", err)
	}

	return swagger, nil
}
