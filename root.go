// Package cabbageseo exposes assets embedded at the repository root.
package cabbageseo

import "embed"

// Migrations contains the SQL migrations applied by the 'migrate' subcommand.
//
//go:embed migrations/*.sql
var Migrations embed.FS
