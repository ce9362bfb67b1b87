package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// BillingMetrics implementa billing.EventRecorder con contadores Prometheus.
type BillingMetrics struct {
	InvoicesCreated *prometheus.CounterVec
	StatusChanges   *prometheus.CounterVec
	Payments        *prometheus.CounterVec
	PaymentAmount   *prometheus.CounterVec
}

// NewBillingMetrics registra y devuelve los colectores de facturación.
func NewBillingMetrics(namespace string, reg prometheus.Registerer) *BillingMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &BillingMetrics{
		InvoicesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_created_total",
			Help:      "Facturas creadas por estado inicial.",
		}, []string{"status"}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_status_changes_total",
			Help:      "Cambios de estado de factura.",
		}, []string{"from", "to"}),
		Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Pagos registrados por medio de pago.",
		}, []string{"method"}),
		PaymentAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_amount_total",
			Help:      "Importe acumulado de pagos registrados, en la moneda configurada.",
		}, []string{"method"}),
	}
	for _, c := range []**prometheus.CounterVec{&m.InvoicesCreated, &m.StatusChanges, &m.Payments, &m.PaymentAmount} {
		target := c
		mustRegister(reg, *target, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				*target = v
			}
		})
	}
	return m
}

func (m *BillingMetrics) InvoiceCreated(status string) {
	m.InvoicesCreated.WithLabelValues(status).Inc()
}

func (m *BillingMetrics) InvoiceStatusChanged(from, to string) {
	m.StatusChanges.WithLabelValues(from, to).Inc()
}

func (m *BillingMetrics) PaymentRecorded(method string, amount decimal.Decimal) {
	m.Payments.WithLabelValues(method).Inc()
	if amount.IsPositive() {
		m.PaymentAmount.WithLabelValues(method).Add(amount.InexactFloat64())
	}
}
