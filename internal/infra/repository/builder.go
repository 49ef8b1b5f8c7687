package repository

import "github.com/Masterminds/squirrel"

// qb is the shared statement builder; all queries use Postgres placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
