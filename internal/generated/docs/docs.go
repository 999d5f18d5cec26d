// Package docs registers the ordering API document with swag so that
// echo-swagger can serve it under /swagger/doc.json.
package docs

import (
	"ordering/internal/generated/servers"

	"github.com/swaggo/swag"
)

type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	return string(servers.SpecJSON)
}

func init() {
	swag.Register(swag.Name, apiDoc{})
}
