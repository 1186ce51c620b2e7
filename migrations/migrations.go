// migrations содержит SQL-миграции сервиса, встраиваемые в бинарь.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
