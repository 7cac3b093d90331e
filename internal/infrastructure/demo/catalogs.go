package demo

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword contraseña compartida por todos los usuarios demo.
const DefaultPassword = "demo123"

// CompanyID empresa única del dataset demo.
const CompanyID = 1

// Cardinalidades fijas de la semilla.
const (
	NumUsers        = 4
	NumRegisters    = 2
	NumCategories   = 8
	NumProducts     = 50
	NumClients      = 20
	NumSuppliers    = 10
	NumSales        = 100
	NumPurchases    = 30
	NumExpenses     = 20
	NumPendingSales = 15
)

var departments = []string{
	"Guatemala", "Alta Verapaz", "Baja Verapaz", "Chimaltenango", "Chiquimula",
	"El Progreso", "Escuintla", "Huehuetenango", "Izabal", "Jalapa", "Jutiapa",
	"Petén", "Quetzaltenango", "Quiché", "Retalhuleu", "Sacatepéquez", "San Marcos",
	"Santa Rosa", "Sololá", "Suchitepéquez", "Totonicapán", "Zacapa",
}

// Municipios principales; el resto de departamentos usa su cabecera.
var municipalities = map[string][]string{
	"Guatemala":      {"Guatemala", "Mixco", "Villa Nueva", "San Miguel Petapa", "Villa Canales"},
	"Quetzaltenango": {"Quetzaltenango", "Salcajá", "Olintepeque", "San Mateo"},
	"Escuintla":      {"Escuintla", "Santa Lucía Cotzumalguapa", "La Democracia", "Siquinalá"},
}

var categoryCatalog = []struct{ name, location string }{
	{"Electrónica", "Pasillo A"},
	{"Ropa", "Pasillo B"},
	{"Alimentos", "Pasillo C"},
	{"Bebidas", "Pasillo D"},
	{"Hogar", "Pasillo E"},
	{"Deportes", "Pasillo F"},
	{"Juguetes", "Pasillo G"},
	{"Libros", "Pasillo H"},
}

var brands = []string{
	"Samsung", "LG", "Sony", "Panasonic", "Philips",
	"Nike", "Adidas", "Puma", "Reebok",
	"Coca-Cola", "Pepsi", "Gallo", "Dos Pinos",
	"Bimbo", "Diana", "Marinela",
}

var unitTypes = []string{"Unidad", "Caja", "Paquete", "Litro", "Kilogramo"}

var expenseReasons = []string{
	"Pago de servicios", "Mantenimiento", "Publicidad", "Transporte", "Alquiler",
	"Salarios", "Suministros de oficina", "Reparaciones", "Limpieza", "Seguridad",
}

var fundings = []string{"Efectivo", "Transferencia", "Tarjeta"}

// Estado de ventas sembradas: 3 de cada 5 completadas.
var seededSaleStatuses = []string{"completada", "completada", "completada", "pendiente", "cancelada"}

type seedUser struct {
	first, last, email, username, role, photo string
	registerID                                int
}

var seedUsers = []seedUser{
	{"Carlos", "Administrador", "owner@superventas.com", "owner", "Owner", "https://i.pravatar.cc/150?img=12", 1},
	{"María", "González", "admin@superventas.com", "admin", "Administrador", "https://i.pravatar.cc/150?img=5", 1},
	{"Juan", "Pérez", "cajero@superventas.com", "cajero", "Cajero", "https://i.pravatar.cc/150?img=33", 1},
	{"Ana", "Martínez", "vendedor@superventas.com", "vendedor", "Vendedor", "https://i.pravatar.cc/150?img=9", 2},
}

var defaultPasswordHash = sync.OnceValues(func() ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
})

// hashPassword reutiliza el hash de la contraseña por defecto.
func hashPassword(password string) (string, error) {
	if password == DefaultPassword {
		h, err := defaultPasswordHash()
		return string(h), err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}
