// Package storage agrupa los repos de lectura que sirven cada pantalla.
// Hay dos proveedores: memory (datos de muestra compilados) y postgres
// (el mismo catálogo, solo lectura).
package storage

import (
	"dog-life/internal/domain/askai"
	"dog-life/internal/domain/feed"
	"dog-life/internal/domain/health"
	"dog-life/internal/domain/home"
	"dog-life/internal/domain/match"
	"dog-life/internal/domain/notifications"
	"dog-life/internal/domain/services"
)

type Catalog struct {
	Feed          feed.Repository
	Notifications notifications.Repository
	Home          home.Repository
	AskAI         askai.Repository
	Health        health.Repository
	Services      services.Repository
	Match         match.Repository
}
