package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
	"github.com/Bilal2025D/Fatora/internal/domain/search"
	"github.com/Bilal2025D/Fatora/pkg/dates"
)

// UnknownInvoice se muestra en lugar del número/cliente cuando la factura del pago ya no existe.
const UnknownInvoice = "desconocido"

// MethodAll en el filtro de medio de pago equivale a no filtrar.
const MethodAll = "all"

// PaymentUseCase registra y lista pagos. Se permiten pagos parciales y no se
// controla el saldo de la factura.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	methods  repository.PaymentMethodRepository
	invoices repository.InvoiceRepository
	events   EventRecorder
	now      func() time.Time
}

// NewPaymentUseCase construye el caso de uso. events puede ser nil.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	methods repository.PaymentMethodRepository,
	invoices repository.InvoiceRepository,
	events EventRecorder,
) *PaymentUseCase {
	if events == nil {
		events = NopRecorder{}
	}
	return &PaymentUseCase{payments: payments, methods: methods, invoices: invoices, events: events, now: time.Now}
}

// Record registra un pago contra una factura existente.
func (uc *PaymentUseCase) Record(in dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor que cero (recibido %s)", domain.ErrInvalidInput, in.Amount)
	}
	method := strings.TrimSpace(in.Method)
	if !entity.IsValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: medio de pago desconocido %q", domain.ErrValidation, in.Method)
	}
	inv, err := uc.invoices.GetByID(strings.TrimSpace(in.InvoiceID))
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, in.InvoiceID)
	}
	date, err := dates.ParseOr(in.Date, uc.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	p := &entity.Payment{
		ID:        uuid.New().String(),
		InvoiceID: inv.ID,
		Amount:    in.Amount,
		Date:      date,
		Method:    method,
		Reference: strings.TrimSpace(in.Reference),
		Notes:     strings.TrimSpace(in.Notes),
	}
	if err := uc.payments.Create(p); err != nil {
		return nil, err
	}
	uc.events.PaymentRecorded(p.Method, p.Amount)
	return toPaymentResponse(entity.PaymentView{Payment: *p, InvoiceNumber: inv.Number, CustomerName: inv.CustomerName}), nil
}

// Get obtiene un pago con los datos de su factura.
func (uc *PaymentUseCase) Get(id string) (*dto.PaymentResponse, error) {
	view, err := uc.View(id)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(view), nil
}

// View obtiene un pago enriquecido con número de factura y cliente.
func (uc *PaymentUseCase) View(id string) (entity.PaymentView, error) {
	p, err := uc.payments.GetByID(id)
	if err != nil {
		return entity.PaymentView{}, err
	}
	if p == nil {
		return entity.PaymentView{}, fmt.Errorf("%w: pago %s", domain.ErrNotFound, id)
	}
	views, err := uc.views([]*entity.Payment{p})
	if err != nil {
		return entity.PaymentView{}, err
	}
	return views[0], nil
}

// Delete elimina un pago.
func (uc *PaymentUseCase) Delete(id string) error {
	return uc.payments.Delete(id)
}

// List filtra por texto (número de factura, cliente o referencia) y por medio de pago ("" o "all" = todos).
func (uc *PaymentUseCase) List(q dto.ListQuery) (*dto.PaymentListResponse, error) {
	views, err := uc.Views(q)
	if err != nil {
		return nil, err
	}
	out := &dto.PaymentListResponse{
		Items: make([]dto.PaymentResponse, 0, len(views)),
		Meta:  dto.ListMeta{Total: len(views), Query: q.Query},
	}
	for _, v := range views {
		out.Items = append(out.Items, *toPaymentResponse(v))
	}
	return out, nil
}

// Views aplica los filtros de List y devuelve las vistas de pago (también usadas por la exportación).
func (uc *PaymentUseCase) Views(q dto.ListQuery) ([]entity.PaymentView, error) {
	method := strings.TrimSpace(q.Method)
	if method != "" && method != MethodAll && !entity.IsValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: medio de pago desconocido %q", domain.ErrValidation, method)
	}
	list, err := uc.payments.List()
	if err != nil {
		return nil, err
	}
	views, err := uc.views(list)
	if err != nil {
		return nil, err
	}
	views = search.FilterByQuery(views, q.Query, search.PaymentFields...)
	if method == "" || method == MethodAll {
		return views, nil
	}
	out := views[:0]
	for _, v := range views {
		if v.Method == method {
			out = append(out, v)
		}
	}
	return out, nil
}

// ListByInvoice pagos registrados contra una factura, en orden de registro.
// La factura debe existir.
func (uc *PaymentUseCase) ListByInvoice(invoiceID string) (*dto.PaymentListResponse, error) {
	inv, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, invoiceID)
	}
	list, err := uc.payments.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	views, err := uc.views(list)
	if err != nil {
		return nil, err
	}
	out := &dto.PaymentListResponse{
		Items: make([]dto.PaymentResponse, 0, len(views)),
		Meta:  dto.ListMeta{Total: len(views)},
	}
	for _, v := range views {
		out.Items = append(out.Items, *toPaymentResponse(v))
	}
	return out, nil
}

// ListMethods devuelve el catálogo de medios de pago.
func (uc *PaymentUseCase) ListMethods() ([]dto.PaymentMethodResponse, error) {
	list, err := uc.methods.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.PaymentMethodResponse{ID: m.ID, Name: m.Name, Type: m.Type, IsDefault: m.IsDefault})
	}
	return out, nil
}

func (uc *PaymentUseCase) views(list []*entity.Payment) ([]entity.PaymentView, error) {
	cache := make(map[string]*entity.Invoice)
	out := make([]entity.PaymentView, 0, len(list))
	for _, p := range list {
		inv, seen := cache[p.InvoiceID]
		if !seen {
			var err error
			inv, err = uc.invoices.GetByID(p.InvoiceID)
			if err != nil {
				return nil, err
			}
			cache[p.InvoiceID] = inv
		}
		view := entity.PaymentView{Payment: *p, InvoiceNumber: UnknownInvoice, CustomerName: UnknownInvoice}
		if inv != nil {
			view.InvoiceNumber = inv.Number
			view.CustomerName = inv.CustomerName
		}
		out = append(out, view)
	}
	return out, nil
}

func toPaymentResponse(v entity.PaymentView) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            v.ID,
		InvoiceID:     v.InvoiceID,
		InvoiceNumber: v.InvoiceNumber,
		CustomerName:  v.CustomerName,
		Amount:        v.Amount,
		Date:          v.Date,
		Method:        v.Method,
		Reference:     v.Reference,
		Notes:         v.Notes,
	}
}
