package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/reports/dashboard.
type DashboardSummaryDTO struct {
	TotalRevenue   decimal.Decimal    `json:"total_revenue"`  // suma de facturas pagadas
	PendingAmount  decimal.Decimal    `json:"pending_amount"` // suma de facturas enviadas + vencidas
	PendingCount   int                `json:"pending_count"`
	CustomerCount  int                `json:"customer_count"`
	ProductCount   int                `json:"product_count"`
	InvoiceCount   int                `json:"invoice_count"`
	LowStockCount  int                `json:"low_stock_count"` // productos con menos de 10 unidades
	RecentInvoices []RecentInvoiceDTO `json:"recent_invoices"` // las 5 más recientes por fecha

	// Texto listo para mostrar, formateado según APP_LOCALE.
	TotalRevenueLabel  string `json:"total_revenue_label"`
	PendingAmountLabel string `json:"pending_amount_label"`
}

// RecentInvoiceDTO resumen de factura para el widget del dashboard.
type RecentInvoiceDTO struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	Date         string          `json:"date"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
}
