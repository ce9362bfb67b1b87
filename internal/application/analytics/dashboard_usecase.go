// Package analytics contiene los casos de uso del dashboard y de los reportes
// de ventas. Todo se calcula sobre instantáneas del almacén; nada se guarda.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
	"github.com/Bilal2025D/Fatora/pkg/format"
)

const (
	dashboardRecent   = 5  // facturas en el widget "recientes"
	lowStockThreshold = 10 // existencias por debajo de este valor cuentan como bajas
)

// DashboardUseCase genera el resumen de la pantalla principal.
type DashboardUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	fmt       *format.Formatter
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	formatter *format.Formatter,
) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices, customers: customers, products: products, fmt: formatter}
}

// GetSummary construye el DashboardSummaryDTO.
//
//   - TotalRevenue:  Σ total de facturas pagadas.
//   - PendingAmount: Σ total de facturas enviadas o vencidas (y su cantidad).
//   - RecentInvoices: las 5 de fecha más reciente.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := loadSnapshot(ctx, uc.invoices, uc.customers, uc.products)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalRevenue:   decimal.Zero,
		PendingAmount:  decimal.Zero,
		CustomerCount:  len(snap.customers),
		ProductCount:   len(snap.products),
		InvoiceCount:   len(snap.invoices),
		RecentInvoices: make([]dto.RecentInvoiceDTO, 0, dashboardRecent),
	}
	for _, inv := range snap.invoices {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			out.TotalRevenue = out.TotalRevenue.Add(inv.Total)
		case entity.InvoiceStatusSent, entity.InvoiceStatusOverdue:
			out.PendingAmount = out.PendingAmount.Add(inv.Total)
			out.PendingCount++
		}
	}
	for _, p := range snap.products {
		if p.Stock < lowStockThreshold {
			out.LowStockCount++
		}
	}

	recent := append([]*entity.Invoice(nil), snap.invoices...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > dashboardRecent {
		recent = recent[:dashboardRecent]
	}
	for _, inv := range recent {
		out.RecentInvoices = append(out.RecentInvoices, dto.RecentInvoiceDTO{
			ID:           inv.ID,
			Number:       inv.Number,
			CustomerName: inv.CustomerName,
			Date:         uc.fmt.Date(inv.Date),
			Total:        inv.Total,
			Status:       inv.Status,
		})
	}

	out.TotalRevenueLabel = uc.fmt.Money(out.TotalRevenue)
	out.PendingAmountLabel = uc.fmt.Money(out.PendingAmount)
	return out, nil
}

// snapshot copia de las colecciones tomada al inicio de un reporte.
type snapshot struct {
	invoices  []*entity.Invoice
	customers []*entity.Customer
	products  []*entity.Product
}

// loadSnapshot lee las tres colecciones en paralelo.
func loadSnapshot(
	ctx context.Context,
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
) (*snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var snap snapshot
	var g errgroup.Group
	g.Go(func() (err error) {
		snap.invoices, err = invoices.List()
		return err
	})
	g.Go(func() (err error) {
		snap.customers, err = customers.List()
		return err
	})
	g.Go(func() (err error) {
		snap.products, err = products.List()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
