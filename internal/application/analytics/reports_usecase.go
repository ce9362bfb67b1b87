package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
	"github.com/Bilal2025D/Fatora/pkg/format"
)

// UncategorizedLabel agrupa líneas libres o de productos ya eliminados.
const UncategorizedLabel = "Sin categoría"

var hundred = decimal.NewFromInt(100)

// ReportsUseCase genera los reportes de ventas, clientes, productos y categorías.
// Las facturas anuladas no cuentan como ventas.
type ReportsUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	fmt       *format.Formatter
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	formatter *format.Formatter,
) *ReportsUseCase {
	return &ReportsUseCase{invoices: invoices, customers: customers, products: products, fmt: formatter}
}

// GetAll calcula los cuatro reportes en paralelo sobre una misma instantánea.
func (uc *ReportsUseCase) GetAll(ctx context.Context) (*dto.ReportsDTO, error) {
	snap, err := loadSnapshot(ctx, uc.invoices, uc.customers, uc.products)
	if err != nil {
		return nil, fmt.Errorf("reportes: %w", err)
	}
	var out dto.ReportsDTO
	var g errgroup.Group
	g.Go(func() (err error) {
		out.Sales, err = uc.sales(snap)
		return err
	})
	g.Go(func() error {
		out.Customers = customerSpending(snap)
		return nil
	})
	g.Go(func() error {
		out.Products = productSales(snap)
		return nil
	})
	g.Go(func() error {
		out.Categories = categoryShares(snap)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reportes: %w", err)
	}
	return &out, nil
}

// Sales ventas mensuales (por fecha de emisión), media/mediana mensual y porcentaje de facturas pagadas.
func (uc *ReportsUseCase) Sales(ctx context.Context) (*dto.SalesReportDTO, error) {
	snap, err := loadSnapshot(ctx, uc.invoices, uc.customers, uc.products)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	out, err := uc.sales(snap)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	return &out, nil
}

// Customers gasto por cliente, de mayor a menor.
func (uc *ReportsUseCase) Customers(ctx context.Context) ([]dto.CustomerSpendingDTO, error) {
	snap, err := loadSnapshot(ctx, uc.invoices, uc.customers, uc.products)
	if err != nil {
		return nil, fmt.Errorf("reporte de clientes: %w", err)
	}
	return customerSpending(snap), nil
}

// Products unidades vendidas e ingresos por producto, de más a menos unidades.
func (uc *ReportsUseCase) Products(ctx context.Context) ([]dto.ProductSalesDTO, error) {
	snap, err := loadSnapshot(ctx, uc.invoices, uc.customers, uc.products)
	if err != nil {
		return nil, fmt.Errorf("reporte de productos: %w", err)
	}
	return productSales(snap), nil
}

// Categories participación de cada categoría en los ingresos (sin impuestos).
func (uc *ReportsUseCase) Categories(ctx context.Context) ([]dto.CategoryShareDTO, error) {
	snap, err := loadSnapshot(ctx, uc.invoices, uc.customers, uc.products)
	if err != nil {
		return nil, fmt.Errorf("reporte de categorías: %w", err)
	}
	return categoryShares(snap), nil
}

func (uc *ReportsUseCase) sales(snap *snapshot) (dto.SalesReportDTO, error) {
	out := dto.SalesReportDTO{
		Months:         []dto.MonthlySalesDTO{},
		TotalSales:     decimal.Zero,
		AverageMonthly: decimal.Zero,
		MedianMonthly:  decimal.Zero,
		PaidRatio:      decimal.Zero,
	}
	byMonth := make(map[string]*dto.MonthlySalesDTO)
	for _, inv := range snap.invoices {
		out.InvoiceCount++
		if inv.Status == entity.InvoiceStatusPaid {
			out.PaidCount++
		}
		if inv.Status == entity.InvoiceStatusCancelled {
			continue
		}
		d := inv.Date.UTC()
		key := d.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
			m = &dto.MonthlySalesDTO{Month: key, Label: uc.fmt.MonthLabel(first), Amount: decimal.Zero}
			byMonth[key] = m
		}
		m.Amount = m.Amount.Add(inv.Total)
		m.Count++
		out.TotalSales = out.TotalSales.Add(inv.Total)
	}
	if out.InvoiceCount > 0 {
		out.PaidRatio = decimal.NewFromInt(int64(out.PaidCount)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(out.InvoiceCount))).
			Round(2)
	}
	if len(byMonth) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	amounts := make([]float64, 0, len(keys))
	for _, k := range keys {
		out.Months = append(out.Months, *byMonth[k])
		amounts = append(amounts, byMonth[k].Amount.InexactFloat64())
	}
	mean, err := stats.Mean(amounts)
	if err != nil {
		return out, fmt.Errorf("media mensual: %w", err)
	}
	median, err := stats.Median(amounts)
	if err != nil {
		return out, fmt.Errorf("mediana mensual: %w", err)
	}
	out.AverageMonthly = decimal.NewFromFloat(mean).Round(2)
	out.MedianMonthly = decimal.NewFromFloat(median).Round(2)
	return out, nil
}

func customerSpending(snap *snapshot) []dto.CustomerSpendingDTO {
	index := make(map[string]int, len(snap.customers))
	out := make([]dto.CustomerSpendingDTO, 0, len(snap.customers))
	for _, c := range snap.customers {
		index[c.ID] = len(out)
		out = append(out, dto.CustomerSpendingDTO{CustomerID: c.ID, CustomerName: c.Name, TotalSpent: decimal.Zero})
	}
	for _, inv := range snap.invoices {
		if inv.Status == entity.InvoiceStatusCancelled {
			continue
		}
		i, ok := index[inv.CustomerID]
		if !ok {
			continue
		}
		out[i].InvoiceCount++
		out[i].TotalSpent = out[i].TotalSpent.Add(inv.Total)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSpent.GreaterThan(out[j].TotalSpent) })
	return out
}

func productSales(snap *snapshot) []dto.ProductSalesDTO {
	index := make(map[string]int, len(snap.products))
	out := make([]dto.ProductSalesDTO, 0, len(snap.products))
	for _, p := range snap.products {
		index[p.ID] = len(out)
		out = append(out, dto.ProductSalesDTO{ProductID: p.ID, Name: p.Name, Revenue: decimal.Zero})
	}
	for _, inv := range snap.invoices {
		if inv.Status == entity.InvoiceStatusCancelled {
			continue
		}
		for _, it := range inv.Items {
			i, ok := index[it.ProductID]
			if !ok {
				continue
			}
			out[i].Quantity += it.Quantity
			out[i].Revenue = out[i].Revenue.Add(it.Total)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out
}

func categoryShares(snap *snapshot) []dto.CategoryShareDTO {
	categoryOf := make(map[string]string, len(snap.products))
	for _, p := range snap.products {
		if p.Category != "" {
			categoryOf[p.ID] = p.Category
		}
	}
	var order []string
	revenue := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, inv := range snap.invoices {
		if inv.Status == entity.InvoiceStatusCancelled {
			continue
		}
		for _, it := range inv.Items {
			cat, ok := categoryOf[it.ProductID]
			if !ok {
				cat = UncategorizedLabel
			}
			if _, seen := revenue[cat]; !seen {
				order = append(order, cat)
				revenue[cat] = decimal.Zero
			}
			revenue[cat] = revenue[cat].Add(it.Total)
			total = total.Add(it.Total)
		}
	}
	out := make([]dto.CategoryShareDTO, 0, len(order))
	for _, cat := range order {
		share := decimal.Zero
		if total.IsPositive() {
			share = revenue[cat].Mul(hundred).Div(total).Round(2)
		}
		out = append(out, dto.CategoryShareDTO{Category: cat, Revenue: revenue[cat], Share: share})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out
}
