package postgres

// schemaStatements crea las tablas del dataset si no existen. Los nombres de
// columna coinciden con demo.Dataset.Tables.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS empresas (
		id INTEGER PRIMARY KEY,
		nombre TEXT NOT NULL,
		nit TEXT NOT NULL,
		telefono TEXT,
		email TEXT,
		direccion TEXT,
		owner_id INTEGER,
		foto TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		nombre TEXT NOT NULL,
		apellido TEXT,
		email TEXT NOT NULL UNIQUE,
		usuario TEXT,
		clave_hash TEXT NOT NULL,
		cargo TEXT NOT NULL,
		foto TEXT,
		caja_id INTEGER,
		estado TEXT NOT NULL,
		has_changed_password BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS cajas (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		numero INTEGER NOT NULL,
		nombre TEXT NOT NULL,
		estado TEXT NOT NULL,
		efectivo NUMERIC(14,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS categorias (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		nombre TEXT NOT NULL,
		ubicacion TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS productos (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		codigo TEXT NOT NULL UNIQUE,
		nombre TEXT NOT NULL,
		descripcion TEXT,
		stock_total INTEGER NOT NULL,
		tipo_unidad TEXT,
		precio_compra NUMERIC(14,2) NOT NULL,
		precio_venta NUMERIC(14,2) NOT NULL,
		marca TEXT,
		modelo TEXT,
		estado TEXT NOT NULL,
		foto TEXT,
		categoria_id INTEGER REFERENCES categorias(id),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS clientes (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		tipo_documento TEXT NOT NULL,
		numero_documento TEXT NOT NULL,
		nombre TEXT NOT NULL,
		apellido TEXT,
		departamento TEXT,
		municipio TEXT,
		direccion TEXT,
		telefono TEXT,
		email TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS proveedores (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		tipo_documento TEXT NOT NULL,
		numero_documento TEXT NOT NULL,
		nombre TEXT NOT NULL,
		departamento TEXT,
		municipio TEXT,
		direccion TEXT,
		telefono TEXT,
		email TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS ventas (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		codigo TEXT NOT NULL UNIQUE,
		fecha TEXT NOT NULL,
		hora TEXT NOT NULL,
		total NUMERIC(14,2) NOT NULL,
		pagado NUMERIC(14,2) NOT NULL,
		cambio NUMERIC(14,2) NOT NULL,
		usuario_id INTEGER NOT NULL,
		cliente_id INTEGER,
		caja_id INTEGER NOT NULL,
		estado TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS venta_detalles (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		producto_id INTEGER NOT NULL,
		cantidad INTEGER NOT NULL,
		precio_venta NUMERIC(14,2) NOT NULL,
		precio_compra NUMERIC(14,2) NOT NULL,
		total NUMERIC(14,2) NOT NULL,
		descripcion TEXT,
		venta_codigo TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS compras (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		codigo TEXT NOT NULL UNIQUE,
		fecha TEXT NOT NULL,
		hora TEXT NOT NULL,
		total NUMERIC(14,2) NOT NULL,
		pagado NUMERIC(14,2) NOT NULL,
		cambio NUMERIC(14,2) NOT NULL,
		usuario_id INTEGER NOT NULL,
		proveedor_id INTEGER NOT NULL,
		caja_id INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS compra_detalles (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		producto_id INTEGER NOT NULL,
		cantidad INTEGER NOT NULL,
		precio_compra NUMERIC(14,2) NOT NULL,
		total NUMERIC(14,2) NOT NULL,
		compra_codigo TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS gastos (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		razon TEXT NOT NULL,
		monto NUMERIC(14,2) NOT NULL,
		fondo TEXT NOT NULL,
		caja_id INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS ventas_pendientes (
		id INTEGER PRIMARY KEY,
		empresa_id INTEGER NOT NULL REFERENCES empresas(id),
		codigo TEXT NOT NULL,
		fecha TEXT NOT NULL,
		hora TEXT NOT NULL,
		total NUMERIC(14,2) NOT NULL,
		pagado NUMERIC(14,2) NOT NULL,
		cambio NUMERIC(14,2) NOT NULL,
		usuario_id INTEGER NOT NULL,
		cliente_id INTEGER,
		caja_id INTEGER NOT NULL,
		estado TEXT NOT NULL,
		cliente_nombre TEXT,
		vendedor_nombre TEXT,
		detalles JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		deleted_at TIMESTAMPTZ
	)`,
}
