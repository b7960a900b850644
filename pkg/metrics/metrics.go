// Package metrics expone contadores Prometheus del PDV y el handler /metrics.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder registra los eventos del núcleo de ventas. Los casos de uso dependen de esta interfaz.
type Recorder interface {
	SaleCommitted(total float64, items int)
	SaleRejected(reason string)
	SideEffectFailed(kind string)
}

// Registry contadores propios sobre un prometheus.Registry dedicado.
type Registry struct {
	reg *prometheus.Registry

	salesCommitted prometheus.Counter
	salesRejected  *prometheus.CounterVec
	salesAmount    prometheus.Counter
	itemsSold      prometheus.Counter
	sideEffects    *prometheus.CounterVec
}

var _ Recorder = (*Registry)(nil)

// New crea el registro con los colectores de proceso y Go más los del PDV.
func New(namespace string) *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		salesCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "committed_total",
			Help:      "Vendas confirmadas.",
		}),
		salesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "rejected_total",
			Help:      "Vendas rejeitadas por validação ou estoque.",
		}, []string{"reason"}),
		salesAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "amount_total",
			Help:      "Soma dos totais das vendas confirmadas (R$).",
		}),
		itemsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "items_total",
			Help:      "Unidades vendidas.",
		}),
		sideEffects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "side_effect_failures_total",
			Help:      "Falhas de lançamento financeiro ou comprovante após a venda.",
		}, []string{"kind"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.salesCommitted, r.salesRejected, r.salesAmount, r.itemsSold, r.sideEffects,
	)
	return r
}

// SaleCommitted suma una venta confirmada.
func (r *Registry) SaleCommitted(total float64, items int) {
	r.salesCommitted.Inc()
	r.salesAmount.Add(total)
	r.itemsSold.Add(float64(items))
}

// SaleRejected suma un rechazo con su motivo (validation, stock, internal).
func (r *Registry) SaleRejected(reason string) {
	r.salesRejected.WithLabelValues(reason).Inc()
}

// SideEffectFailed suma una falla posterior al commit (ledger, receipt).
func (r *Registry) SideEffectFailed(kind string) {
	r.sideEffects.WithLabelValues(kind).Inc()
}

// Gatherer expone el registro para tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Handler devuelve el handler HTTP de /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Nop no registra nada.
type Nop struct{}

func (Nop) SaleCommitted(float64, int) {}
func (Nop) SaleRejected(string)        {}
func (Nop) SideEffectFailed(string)    {}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default registro compartido del proceso (namespace sys360).
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = New("sys360") })
	return defaultReg
}
