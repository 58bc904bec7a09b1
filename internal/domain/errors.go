package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// Cuentas de usuario
	ErrEmailAlreadyExists = errors.New("el correo electrónico ya está registrado")
	ErrRFCAlreadyExists   = errors.New("el RFC ya está registrado")
	ErrInvalidName        = errors.New("ingresa tu nombre completo")
	ErrInvalidRFC         = errors.New("el RFC debe tener exactamente 13 caracteres")
	ErrInvalidEmail       = errors.New("el correo electrónico no tiene una estructura válida")

	// Catálogos SAT y facturación
	ErrCatalogNotFound = errors.New("clave de catálogo no encontrada")
	ErrDocumentExists  = errors.New("la factura ya tiene un PDF asociado")

	// Nómina
	ErrInvalidCURP           = errors.New("la CURP debe tener exactamente 18 caracteres")
	ErrInvalidNSS            = errors.New("el NSS debe tener exactamente 11 dígitos")
	ErrEmployeeAlreadyExists = errors.New("el empleado ya está registrado")
)
