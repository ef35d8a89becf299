// Package gen holds the server interface, models and chi router generated
// from spec/openapi.yaml. Regenerate with `go generate ./...` after editing
// the API description; never edit api.gen.go by hand.
package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=config.yaml ../../../spec/openapi.yaml
