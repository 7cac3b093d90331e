package ports

// DemoStore operaciones administrativas del almacén en memoria.
type DemoStore interface {
	Reset()
	// Counts devuelve la cantidad de registros por nombre de entidad.
	Counts() map[string]int
}
