package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// catalogTables traduce cada catálogo a su tabla. Es la única fuente de
// nombres de tabla que se concatenan en SQL.
var catalogTables = map[entity.CatalogKind]string{
	entity.CatalogTipoComprobante: "tipo_comprobante",
	entity.CatalogUsoCFDI:         "uso_destino_cfdi",
	entity.CatalogRegimenFiscal:   "regimen_fiscal",
	entity.CatalogMetodoPago:      "metodos_pago",
	entity.CatalogFormaPago:       "formas_pago",
	entity.CatalogRegimenLaboral:  "regimen_laboral",
	entity.CatalogBanco:           "banco",
	entity.CatalogPercepcion:      "percepciones",
	entity.CatalogDeduccion:       "deducciones",
}

// CatalogRepo lectura de catálogos SAT (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// List devuelve todas las claves de un catálogo ordenadas por clave.
func (r *CatalogRepo) List(ctx context.Context, kind entity.CatalogKind) ([]entity.CatalogEntry, error) {
	table, err := CatalogTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, `SELECT clave, descripcion FROM `+table+` ORDER BY clave`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	var list []entity.CatalogEntry
	for rows.Next() {
		var e entity.CatalogEntry
		if err := rows.Scan(&e.Code, &e.Description); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Get devuelve una clave del catálogo o nil si no existe.
func (r *CatalogRepo) Get(ctx context.Context, kind entity.CatalogKind, code string) (*entity.CatalogEntry, error) {
	table, err := CatalogTable(kind)
	if err != nil {
		return nil, err
	}
	var e entity.CatalogEntry
	err = r.q.QueryRow(ctx, `SELECT clave, descripcion FROM `+table+` WHERE clave = $1`, code).
		Scan(&e.Code, &e.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return &e, nil
}

// ListProducts devuelve el catálogo de productos y servicios.
func (r *CatalogRepo) ListProducts(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT clave_producto_servicio, unidad, descripcion, precio_unitario
		FROM productos_servicios ORDER BY clave_producto_servicio`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Unit, &p.Description, &p.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetProduct obtiene un producto por clave o nil si no existe.
func (r *CatalogRepo) GetProduct(ctx context.Context, code string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `
		SELECT clave_producto_servicio, unidad, descripcion, precio_unitario
		FROM productos_servicios WHERE clave_producto_servicio = $1`, code).
		Scan(&p.Code, &p.Unit, &p.Description, &p.UnitPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// CatalogTable devuelve la tabla que guarda un catálogo clave/descripción.
func CatalogTable(kind entity.CatalogKind) (string, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return "", fmt.Errorf("catálogo desconocido: %q", kind)
	}
	return table, nil
}
