package billing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/domain"
	domainbilling "github.com/Bilal2025D/Fatora/internal/domain/billing"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
	"github.com/Bilal2025D/Fatora/internal/domain/search"
	"github.com/Bilal2025D/Fatora/pkg/dates"
	"github.com/Bilal2025D/Fatora/pkg/validation"
)

// StatusAll en un filtro de listado equivale a no filtrar.
const StatusAll = "all"

// InvoiceConfig valores por defecto del formulario de facturas.
type InvoiceConfig struct {
	Prefix         string
	DueDays        int
	DefaultTaxRate decimal.Decimal
}

// InvoiceUseCase crea, edita y lista facturas. Los totales se derivan siempre
// de las líneas a través del motor de totales; nunca se aceptan del cliente.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	cfg       InvoiceConfig
	events    EventRecorder
	now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. events puede ser nil.
// El prefijo debe generar números válidos (mayúsculas y dígitos, ej. INV, FAC2).
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	cfg InvoiceConfig,
	events EventRecorder,
) (*InvoiceUseCase, error) {
	cfg.Prefix = strings.TrimSpace(cfg.Prefix)
	if cfg.Prefix == "" {
		cfg.Prefix = "INV"
	}
	if !validation.IsValidInvoicePrefix(cfg.Prefix) {
		return nil, fmt.Errorf("%w: prefijo de factura %q (solo mayúsculas y dígitos, empezando por letra)", domain.ErrInvalidInput, cfg.Prefix)
	}
	if events == nil {
		events = NopRecorder{}
	}
	return &InvoiceUseCase{
		invoices:  invoices,
		customers: customers,
		products:  products,
		cfg:       cfg,
		events:    events,
		now:       time.Now,
	}, nil
}

// Create valida el formulario, resuelve productos y cliente, calcula totales y guarda la factura.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	now := uc.now()
	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		Status:    entity.InvoiceStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.fill(inv, in, now); err != nil {
		return nil, err
	}
	if inv.Number == "" {
		number, err := uc.NextNumber()
		if err != nil {
			return nil, err
		}
		inv.Number = number
	}
	if err := uc.invoices.Create(inv); err != nil {
		return nil, wrapNumberConflict(err, inv.Number)
	}
	uc.events.InvoiceCreated(inv.Status)
	return toInvoiceResponse(inv), nil
}

// Get obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Update reemplaza la factura completa (cabecera y líneas). Number y Status vacíos conservan los actuales.
// Las líneas conservan su ID cuando lo indican o cuando repiten el producto de una línea guardada;
// si el producto ya no existe en el catálogo se usan los datos guardados de la línea.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	previous := inv.Status
	number := inv.Number
	now := uc.now()
	if err := uc.fill(inv, dto.CreateInvoiceRequest(in), now); err != nil {
		return nil, err
	}
	if inv.Number == "" {
		inv.Number = number
	}
	inv.UpdatedAt = now
	if err := uc.invoices.Update(inv); err != nil {
		return nil, wrapNumberConflict(err, inv.Number)
	}
	if previous != inv.Status {
		uc.events.InvoiceStatusChanged(previous, inv.Status)
	}
	return toInvoiceResponse(inv), nil
}

// SetStatus cambia el estado. No hay reglas de transición: cualquier estado de
// la enumeración es válido desde cualquier otro (decisión manual del usuario).
func (uc *InvoiceUseCase) SetStatus(id, status string) (*dto.InvoiceResponse, error) {
	if !entity.IsValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrValidation, status)
	}
	inv, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	previous := inv.Status
	if previous == status {
		return toInvoiceResponse(inv), nil
	}
	inv.Status = status
	inv.UpdatedAt = uc.now()
	if err := uc.invoices.Update(inv); err != nil {
		return nil, err
	}
	uc.events.InvoiceStatusChanged(previous, status)
	return toInvoiceResponse(inv), nil
}

// Delete elimina la factura. Sus pagos quedan registrados con factura "desconocida".
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.invoices.Delete(id)
}

// List filtra por texto (número o cliente) y por estado ("" o "all" = todos).
func (uc *InvoiceUseCase) List(q dto.ListQuery) (*dto.InvoiceListResponse, error) {
	status := strings.TrimSpace(q.Status)
	if status != "" && status != StatusAll && !entity.IsValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrValidation, status)
	}
	list, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	filtered := search.FilterByQuery(derefAll(list), q.Query, search.InvoiceFields...)
	out := &dto.InvoiceListResponse{Items: make([]dto.InvoiceResponse, 0, len(filtered))}
	for i := range filtered {
		if status != "" && status != StatusAll && filtered[i].Status != status {
			continue
		}
		out.Items = append(out.Items, *toInvoiceResponse(&filtered[i]))
	}
	out.Meta = dto.ListMeta{Total: len(out.Items), Query: q.Query}
	return out, nil
}

// NextNumber propone el siguiente número PREFIJO-AAAA-NNN del año en curso:
// el mayor consecutivo existente con ese prefijo y año, más uno.
func (uc *InvoiceUseCase) NextNumber() (string, error) {
	list, err := uc.invoices.List()
	if err != nil {
		return "", err
	}
	stem := fmt.Sprintf("%s-%d-", uc.cfg.Prefix, uc.now().Year())
	last := 0
	for _, inv := range list {
		if !strings.HasPrefix(inv.Number, stem) {
			continue
		}
		n, convErr := strconv.Atoi(strings.TrimPrefix(inv.Number, stem))
		if convErr == nil && n > last {
			last = n
		}
	}
	return fmt.Sprintf("%s%03d", stem, last+1), nil
}

// PreviewTotals calcula líneas y totales sin guardar nada (formulario en edición).
func (uc *InvoiceUseCase) PreviewTotals(in dto.TotalsPreviewRequest) (*dto.TotalsResponse, error) {
	items, err := uc.resolveItems(in.Items, nil)
	if err != nil {
		return nil, err
	}
	priced, err := domainbilling.PriceItems(items)
	if err != nil {
		return nil, err
	}
	t := domainbilling.ComputeInvoiceTotals(priced)
	out := &dto.TotalsResponse{
		Lines:    make([]dto.InvoiceItemResponse, 0, len(priced)),
		Subtotal: t.Subtotal,
		TaxTotal: t.TaxTotal,
		Total:    t.Total,
	}
	for _, it := range priced {
		out.Lines = append(out.Lines, toItemResponse(it))
	}
	return out, nil
}

// fill aplica el formulario sobre inv: cliente, fechas, líneas, totales, estado y número.
func (uc *InvoiceUseCase) fill(inv *entity.Invoice, in dto.CreateInvoiceRequest, now time.Time) error {
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: la factura necesita al menos una línea", domain.ErrValidation)
	}
	customer, err := uc.customers.GetByID(strings.TrimSpace(in.CustomerID))
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
	}

	date, err := dates.ParseOr(in.Date, now)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	due, err := dates.ParseOr(in.DueDate, date.AddDate(0, 0, uc.cfg.DueDays))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if dates.Day(due).Before(dates.Day(date)) {
		return fmt.Errorf("%w: el vencimiento (%s) es anterior a la fecha de emisión (%s)",
			domain.ErrValidation, due.Format("2006-01-02"), date.Format("2006-01-02"))
	}

	status := strings.TrimSpace(in.Status)
	if status != "" {
		if !entity.IsValidInvoiceStatus(status) {
			return fmt.Errorf("%w: estado desconocido %q", domain.ErrValidation, status)
		}
		inv.Status = status
	}

	number := strings.TrimSpace(in.Number)
	if number != "" && !validation.IsValidInvoiceNumber(number) {
		return fmt.Errorf("%w: número de factura mal formado %q (ej. %s-2025-001)", domain.ErrValidation, number, uc.cfg.Prefix)
	}

	items, err := uc.resolveItems(in.Items, inv.Items)
	if err != nil {
		return err
	}
	inv.Items = items
	if err := domainbilling.ApplyTotals(inv); err != nil {
		return err
	}

	inv.Number = number
	inv.CustomerID = customer.ID
	inv.CustomerName = customer.Name
	inv.Date = date
	inv.DueDate = due
	inv.Notes = strings.TrimSpace(in.Notes)
	return nil
}

// resolveItems convierte las líneas del formulario. Una línea con producto toma
// nombre, descripción y precio del catálogo cuando no vienen informados; si el
// producto fue eliminado, de la línea guardada equivalente (stored).
func (uc *InvoiceUseCase) resolveItems(in []dto.InvoiceItemRequest, stored []entity.InvoiceItem) ([]entity.InvoiceItem, error) {
	used := make(map[string]bool, len(stored))
	items := make([]entity.InvoiceItem, 0, len(in))
	for i, req := range in {
		item := entity.InvoiceItem{
			ProductID:   strings.TrimSpace(req.ProductID),
			Name:        strings.TrimSpace(req.Name),
			Description: strings.TrimSpace(req.Description),
			Quantity:    req.Quantity,
			TaxRate:     uc.cfg.DefaultTaxRate,
		}
		prev := matchStoredItem(stored, used, strings.TrimSpace(req.ID), item.ProductID)
		item.ID = uuid.New().String()
		if prev != nil {
			item.ID = prev.ID
			used[prev.ID] = true
		}
		if req.TaxRate != nil {
			item.TaxRate = *req.TaxRate
		}
		if req.UnitPrice != nil {
			item.UnitPrice = *req.UnitPrice
		}
		if item.ProductID != "" {
			product, err := uc.products.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			name, description, price := "", "", decimal.Zero
			switch {
			case product != nil:
				name, description, price = product.Name, product.Description, product.Price
			case prev != nil && prev.ProductID == item.ProductID:
				name, description, price = prev.Name, prev.Description, prev.UnitPrice
			default:
				return nil, fmt.Errorf("%w: línea %d: producto %s", domain.ErrNotFound, i+1, item.ProductID)
			}
			if item.Name == "" {
				item.Name = name
			}
			if item.Description == "" {
				item.Description = description
			}
			if req.UnitPrice == nil {
				item.UnitPrice = price
			}
		} else {
			if item.Name == "" {
				return nil, fmt.Errorf("%w: línea %d: una línea libre necesita nombre", domain.ErrValidation, i+1)
			}
			if req.UnitPrice == nil {
				return nil, fmt.Errorf("%w: línea %d: una línea libre necesita precio unitario", domain.ErrValidation, i+1)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// matchStoredItem busca la línea guardada que corresponde a una del formulario:
// primero por ID, luego la primera libre con el mismo producto.
func matchStoredItem(stored []entity.InvoiceItem, used map[string]bool, id, productID string) *entity.InvoiceItem {
	if id != "" {
		for i := range stored {
			if stored[i].ID == id && !used[id] {
				return &stored[i]
			}
		}
	}
	if productID == "" {
		return nil
	}
	for i := range stored {
		if stored[i].ProductID == productID && !used[stored[i].ID] {
			return &stored[i]
		}
	}
	return nil
}

func (uc *InvoiceUseCase) load(id string) (*entity.Invoice, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	return inv, nil
}

func wrapNumberConflict(err error, number string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return fmt.Errorf("%w: el número %s ya está en uso", domain.ErrDuplicate, number)
	}
	return err
}

func toItemResponse(it entity.InvoiceItem) dto.InvoiceItemResponse {
	return dto.InvoiceItemResponse{
		ID:          it.ID,
		ProductID:   it.ProductID,
		Name:        it.Name,
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TaxRate:     it.TaxRate,
		Total:       it.Total,
		Tax:         domainbilling.LineTax(it),
	}
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, toItemResponse(it))
	}
	return &dto.InvoiceResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		Date:         inv.Date,
		DueDate:      inv.DueDate,
		Items:        items,
		Subtotal:     inv.Subtotal,
		TaxTotal:     inv.TaxTotal,
		Total:        inv.Total,
		Status:       inv.Status,
		Notes:        inv.Notes,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}
