package notify

import "time"

// Variant replica los dos estilos de toast de la app.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice es un mensaje transitorio visible para el usuario.
type Notice struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	At          time.Time `json:"at"`
}

// Sink recibe notices. Push nunca falla: un toast perdido no es un error.
type Sink interface {
	Push(n Notice)
}

// SinkFunc adapta una función a Sink.
type SinkFunc func(n Notice)

func (f SinkFunc) Push(n Notice) { f(n) }

// Discard ignora todo.
var Discard Sink = SinkFunc(func(Notice) {})
