package repository

import "errors"

// ErrNoDatabase is returned by Postgres repositories built without a pool.
var ErrNoDatabase = errors.New("repository: database not configured")
