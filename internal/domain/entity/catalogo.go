package entity

import "github.com/shopspring/decimal"

// Servicio es un servicio del catálogo de la lavandería (lavado por kilo, planchado, etc.).
// Solo lectura desde este módulo.
type Servicio struct {
	ID           string
	LavanderiaID string
	Nombre       string
	Precio       decimal.Decimal
	Unidad       string // kg, pieza, par
}

// Perfil datos de contacto de un cliente registrado.
type Perfil struct {
	ID       string
	Nombre   string
	Telefono string
	Email    string
}
