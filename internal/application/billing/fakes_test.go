package billing_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memInvoiceRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Invoice
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{rows: map[string]entity.Invoice{}}
}

func (r *memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[inv.ID]; ok {
		return domain.ErrConflict
	}
	r.rows[inv.ID] = *inv
	return nil
}

func (r *memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	// Como la columna UUID de PostgreSQL: un id mal formado es error de driver.
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *memInvoiceRepo) ListByReceiver(_ context.Context, rfc string, limit, offset int) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Invoice
	for _, inv := range r.rows {
		if inv.ReceiverRFC == rfc {
			cp := inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memInvoiceRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type memDocumentRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Document
}

func newMemDocumentRepo() *memDocumentRepo {
	return &memDocumentRepo{rows: map[string]entity.Document{}}
}

func (r *memDocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[doc.OwnerID]; ok {
		return domain.ErrDocumentExists
	}
	r.rows[doc.OwnerID] = *doc
	return nil
}

func (r *memDocumentRepo) GetByOwnerID(_ context.Context, ownerID string) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.rows[ownerID]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (r *memDocumentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// fakeTxRunner escribe en repos de staging y solo los vuelca si fn no falla.
type fakeTxRunner struct {
	invoices  *memInvoiceRepo
	documents *memDocumentRepo
}

func (f *fakeTxRunner) RunBilling(_ context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	documentRepo repository.DocumentRepository,
) error) error {
	invStage, docStage := newMemInvoiceRepo(), newMemDocumentRepo()
	if err := fn(invStage, docStage); err != nil {
		return err
	}
	f.invoices.mu.Lock()
	for k, v := range invStage.rows {
		f.invoices.rows[k] = v
	}
	f.invoices.mu.Unlock()
	f.documents.mu.Lock()
	for k, v := range docStage.rows {
		f.documents.rows[k] = v
	}
	f.documents.mu.Unlock()
	return nil
}

type stubUserRepo struct {
	users []entity.User
}

func (s *stubUserRepo) find(match func(entity.User) bool) *entity.User {
	for _, u := range s.users {
		if match(u) {
			cp := u
			return &cp
		}
	}
	return nil
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return errors.New("no soportado") }

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return s.find(func(u entity.User) bool { return u.ID == id }), nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.find(func(u entity.User) bool { return u.Email == email }), nil
}

func (s *stubUserRepo) GetByRFC(_ context.Context, rfc string) (*entity.User, error) {
	return s.find(func(u entity.User) bool { return u.RFC == rfc }), nil
}

type stubCatalogRepo struct {
	entries  map[entity.CatalogKind]map[string]string
	products map[string]entity.Product
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{
		entries: map[entity.CatalogKind]map[string]string{
			entity.CatalogTipoComprobante: {"I": "Ingreso"},
			entity.CatalogUsoCFDI:         {"G01": "Adquisición de mercancías", "G03": "Gastos en general"},
			entity.CatalogRegimenFiscal:   {"601": "General de Ley Personas Morales", "612": "Personas Físicas con Actividades Empresariales y Profesionales"},
			entity.CatalogMetodoPago:      {"PUE": "Pago en una sola exhibición"},
			entity.CatalogFormaPago:       {"01": "Efectivo", "04": "Tarjeta de crédito"},
		},
		products: map[string]entity.Product{
			"01010101": {Code: "01010101", Unit: "PIEZA", Description: "No existe en el catálogo", UnitPrice: decimal.RequireFromString("100.00")},
		},
	}
}

func (s *stubCatalogRepo) List(_ context.Context, kind entity.CatalogKind) ([]entity.CatalogEntry, error) {
	var out []entity.CatalogEntry
	for code, desc := range s.entries[kind] {
		out = append(out, entity.CatalogEntry{Code: code, Description: desc})
	}
	return out, nil
}

func (s *stubCatalogRepo) Get(_ context.Context, kind entity.CatalogKind, code string) (*entity.CatalogEntry, error) {
	desc, ok := s.entries[kind][code]
	if !ok {
		return nil, nil
	}
	return &entity.CatalogEntry{Code: code, Description: desc}, nil
}

func (s *stubCatalogRepo) ListProducts(context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubCatalogRepo) GetProduct(_ context.Context, code string) (*entity.Product, error) {
	p, ok := s.products[code]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Adaptadores falsos
// ──────────────────────────────────────────────────────────────────────────────

type failingRenderer struct{}

func (failingRenderer) RenderInvoice(context.Context, *entity.InvoiceView) ([]byte, error) {
	return nil, errors.New("fuente no disponible")
}

type recordingMirror struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (m *recordingMirror) PutPDF(_ context.Context, key string, _ []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return m.err
}

type recordingMailer struct {
	sent []ports.Message
}

func (m *recordingMailer) Send(_ context.Context, msg ports.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}
