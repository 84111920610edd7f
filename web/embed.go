// Package web holds the dashboard's page templates and browser assets.
package web

import "embed"

// Templates holds the layout, partial and page templates parsed by view.Engine.
//
//go:embed templates/**/*.html
var Templates embed.FS

// Static holds the stylesheet and script served under /static/.
//
//go:embed static/**/*
var Static embed.FS
