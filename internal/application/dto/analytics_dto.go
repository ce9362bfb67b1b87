package dto

import "github.com/shopspring/decimal"

// SalesReportDTO respuesta de GET /api/reports/sales.
type SalesReportDTO struct {
	Months         []MonthlySalesDTO `json:"months"`
	TotalSales     decimal.Decimal   `json:"total_sales"`
	AverageMonthly decimal.Decimal   `json:"average_monthly"`
	MedianMonthly  decimal.Decimal   `json:"median_monthly"`
	InvoiceCount   int               `json:"invoice_count"`
	PaidCount      int               `json:"paid_count"`
	PaidRatio      decimal.Decimal   `json:"paid_ratio"` // porcentaje de facturas pagadas, 0–100
}

// MonthlySalesDTO ventas de un mes (clave AAAA-MM).
type MonthlySalesDTO struct {
	Month  string          `json:"month"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// CustomerSpendingDTO gasto acumulado de un cliente (facturas no anuladas).
type CustomerSpendingDTO struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	InvoiceCount int             `json:"invoice_count"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

// ProductSalesDTO unidades e ingresos por producto.
type ProductSalesDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CategoryShareDTO participación de una categoría en los ingresos.
type CategoryShareDTO struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Share    decimal.Decimal `json:"share"` // porcentaje, 2 decimales
}

// ReportsDTO respuesta agregada de GET /api/reports.
type ReportsDTO struct {
	Sales      SalesReportDTO        `json:"sales"`
	Customers  []CustomerSpendingDTO `json:"customers"`
	Products   []ProductSalesDTO     `json:"products"`
	Categories []CategoryShareDTO    `json:"categories"`
}
