package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"vending-machine/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vending"

// Coin movement kinds, matching the journal.
const (
	coinKindInserted = "inserted"
	coinKindReturned = "returned"
	coinKindRefunded = "refunded"
	coinKindStranded = "stranded"
)

// Collector exposes machine activity as Prometheus metrics. It implements
// ports.TransactionJournal so the machine reports every closed transaction.
type Collector struct {
	labels       prometheus.Labels
	registry     *prometheus.Registry
	transactions *prometheus.CounterVec
	coins        *prometheus.CounterVec
	revenue      prometheus.Counter
	requests     *prometheus.HistogramVec
}

// NewCollector creates a collector with its own registry. Every series
// carries a machine_id const label.
func NewCollector(machineID string) *Collector {
	labels := prometheus.Labels{"machine_id": machineID}

	c := &Collector{
		labels:   labels,
		registry: prometheus.NewRegistry(),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "transactions_total",
			Help:        "Closed transactions by final status.",
			ConstLabels: labels,
		}, []string{"status"}),
		coins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "coins_total",
			Help:        "Coins moved by closed transactions.",
			ConstLabels: labels,
		}, []string{"kind", "denomination"}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "revenue_tenths_total",
			Help:        "Sum of product prices of successful sales, in tenths.",
			ConstLabels: labels,
		}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	c.registry.MustRegister(
		c.transactions,
		c.coins,
		c.revenue,
		c.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Record counts a closed transaction and its coin movements.
func (c *Collector) Record(_ context.Context, tx domain.Transaction) {
	c.transactions.WithLabelValues(string(tx.Status)).Inc()
	if tx.Status == domain.TransactionStatusSuccess {
		c.revenue.Add(float64(tx.ProductPrice))
	}

	c.countCoins(coinKindInserted, tx.InsertedCoins)
	c.countCoins(coinKindReturned, tx.CoinsToReturn)
	c.countCoins(coinKindRefunded, tx.RefundedCoins)
	c.countCoins(coinKindStranded, tx.StrandedCoins)
}

func (c *Collector) countCoins(kind string, coins []domain.Denomination) {
	for _, d := range coins {
		c.coins.WithLabelValues(kind, string(d)).Inc()
	}
}

// TrackInventory exports the coin holder value, read on every scrape.
func (c *Collector) TrackInventory(total func() domain.Money) {
	c.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "coin_holder_tenths",
		Help:        "Value of the coins currently held for change, in tenths.",
		ConstLabels: c.labels,
	}, func() float64 { return float64(total()) }))
}

// ObserveRequest records the latency of one HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
