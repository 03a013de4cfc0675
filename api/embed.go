// Package api embeds the OpenAPI contract of the HTTP interface.
package api

import _ "embed"

// OpenAPI is the contract the generated server and the request validator are built from.
//
//go:embed openapi.yaml
var OpenAPI []byte
