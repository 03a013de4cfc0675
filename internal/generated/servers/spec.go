package servers

import (
	"fmt"

	"printshop/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the OpenAPI specification corresponding to the generated code
// in this file. The external references of OpenAPI specification are resolved.
// The logic of resolving external references is tightly connected to "import-mapping" feature.
// Externally referenced files must be embedded in the corresponding golang packages.
// Urls can be supported but this task was out of the scope.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	swagger, err = loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
