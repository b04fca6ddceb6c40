// Package migrations embeds the schema so binaries do not depend on the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
