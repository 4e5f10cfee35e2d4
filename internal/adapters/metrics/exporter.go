// Package metrics exposes vault status as Prometheus gauges in a private
// registry.
package metrics

import (
	"fmt"
	"io"

	"github.com/bnema/stakevault/internal/application"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "stakevault"

type Exporter struct {
	registry *prometheus.Registry

	totalPooled   prometheus.Gauge
	sharesMinted  prometheus.Gauge
	sharesVirtual prometheus.Gauge
	sharesTotal   prometheus.Gauge
	ratePPB       prometheus.Gauge
	feeBips       prometheus.Gauge
	incentiveBips prometheus.Gauge
	currentBatch  prometheus.Gauge

	agentStaked    *prometheus.GaugeVec
	agentTarget    *prometheus.GaugeVec
	agentImbalance *prometheus.GaugeVec
	agentUnbonding *prometheus.GaugeVec
}

func NewExporter() *Exporter {
	vaultGauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      name,
			Help:      help,
		})
	}
	agentGauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "agent",
			Name:      name,
			Help:      help,
		}, []string{"agent"})
	}

	e := &Exporter{
		registry:       prometheus.NewRegistry(),
		totalPooled:    vaultGauge("total_pooled", "Base asset accounted to the vault"),
		sharesMinted:   vaultGauge("shares_minted", "Receipt shares minted to stakers"),
		sharesVirtual:  vaultGauge("shares_virtual", "Fee shares accrued but not minted"),
		sharesTotal:    vaultGauge("shares_total", "Minted plus virtual shares"),
		ratePPB:        vaultGauge("exchange_rate_ppb", "Base asset per share in parts per billion"),
		feeBips:        vaultGauge("fee_bips", "Annual fee in basis points"),
		incentiveBips:  vaultGauge("incentive_bips", "Compound incentive in basis points"),
		currentBatch:   vaultGauge("current_batch", "Id of the unlock batch accepting requests"),
		agentStaked:    agentGauge("staked", "Base asset staked by the agent"),
		agentTarget:    agentGauge("target", "Weight-proportional stake target"),
		agentImbalance: agentGauge("imbalance", "Target minus staked, negative when over target"),
		agentUnbonding: agentGauge("unbonding", "Base asset unbonding at the agent"),
	}

	e.registry.MustRegister(
		e.totalPooled,
		e.sharesMinted,
		e.sharesVirtual,
		e.sharesTotal,
		e.ratePPB,
		e.feeBips,
		e.incentiveBips,
		e.currentBatch,
		e.agentStaked,
		e.agentTarget,
		e.agentImbalance,
		e.agentUnbonding,
	)
	return e
}

func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Observe replaces every gauge with the values in status. Agents missing from
// status are dropped.
func (e *Exporter) Observe(status application.Status) {
	e.totalPooled.Set(float64(status.TotalPooled))
	e.sharesMinted.Set(float64(status.TotalSharesMinted))
	e.sharesVirtual.Set(float64(status.VirtualShares))
	e.sharesTotal.Set(float64(status.TotalShares))
	e.ratePPB.Set(float64(status.ValuePerScale))
	e.feeBips.Set(float64(status.FeePercentage))
	e.incentiveBips.Set(float64(status.IncentivePercentage))
	e.currentBatch.Set(float64(status.CurrentBatch))

	e.agentStaked.Reset()
	e.agentTarget.Reset()
	e.agentImbalance.Reset()
	e.agentUnbonding.Reset()
	for _, agent := range status.Agents {
		label := string(agent.Account)
		e.agentStaked.WithLabelValues(label).Set(float64(agent.Staked))
		e.agentTarget.WithLabelValues(label).Set(float64(agent.Target))
		e.agentImbalance.WithLabelValues(label).Set(float64(agent.Imbalance))
		e.agentUnbonding.WithLabelValues(label).Set(float64(agent.Unbonding))
	}
}

// WriteText writes every gathered family in the text exposition format.
func (e *Exporter) WriteText(w io.Writer) error {
	families, err := e.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("write metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
