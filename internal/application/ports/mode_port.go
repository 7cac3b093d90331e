package ports

// ModeSwitch define el puerto que decide, en cada llamada, si los gateways
// operan contra el almacén demo en memoria o contra el backend remoto.
// Las implementaciones no deben cachear el valor: el modo puede cambiar entre llamadas.
type ModeSwitch interface {
	IsDemoActive() bool
}

// ModeFunc adapta una función a ModeSwitch.
type ModeFunc func() bool

func (f ModeFunc) IsDemoActive() bool { return f() }

// ModeName etiqueta del modo para logs y métricas.
func ModeName(demo bool) string {
	if demo {
		return "demo"
	}
	return "live"
}
