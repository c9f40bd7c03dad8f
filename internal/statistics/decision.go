package statistics

import (
	"github.com/arrayfan/arrayfan/internal/engine"
	"github.com/arrayfan/arrayfan/internal/state"
	"github.com/prometheus/client_golang/prometheus"
)

const decisionSubsystem = "decision"

// DecisionCollector exposes the outcome of the most recent decision run:
// the final PWM value, the per-source PWM demands and temperatures, and
// which source won the arbitration.
type DecisionCollector struct {
	pwm       *prometheus.Desc
	sourcePwm *prometheus.Desc
	temp      *prometheus.Desc
	winner    *prometheus.Desc
}

func NewDecisionCollector() *DecisionCollector {
	return &DecisionCollector{
		pwm: prometheus.NewDesc(prometheus.BuildFQName(namespace, decisionSubsystem, "pwm"),
			"Final PWM value of the last decision run",
			nil, nil,
		),
		sourcePwm: prometheus.NewDesc(prometheus.BuildFQName(namespace, decisionSubsystem, "source_pwm"),
			"Per-source PWM demand of the last decision run",
			[]string{"source"}, nil,
		),
		temp: prometheus.NewDesc(prometheus.BuildFQName(namespace, decisionSubsystem, "temp_celsius"),
			"Per-source temperature of the last decision run",
			[]string{"source"}, nil,
		),
		winner: prometheus.NewDesc(prometheus.BuildFQName(namespace, decisionSubsystem, "winning_source"),
			"1 for the source whose PWM value was selected, 0 for the others",
			[]string{"source"}, nil,
		),
	}
}

func (collector *DecisionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.pwm
	ch <- collector.sourcePwm
	ch <- collector.temp
	ch <- collector.winner
}

func (collector *DecisionCollector) Collect(ch chan<- prometheus.Metric) {
	decision, ok := state.LatestDecision()
	if !ok {
		return
	}

	ch <- prometheus.MustNewConstMetric(collector.pwm, prometheus.GaugeValue, float64(decision.Pwm))

	evaluations := map[engine.Source]engine.Evaluation{
		engine.SourceDrives: decision.Drives,
		engine.SourceCache:  decision.Cache,
		engine.SourceCpu:    decision.Cpu,
	}
	for source, evaluation := range evaluations {
		ch <- prometheus.MustNewConstMetric(collector.sourcePwm, prometheus.GaugeValue, float64(evaluation.Pwm), string(source))

		winner := 0.0
		if source == decision.Source {
			winner = 1.0
		}
		ch <- prometheus.MustNewConstMetric(collector.winner, prometheus.GaugeValue, winner, string(source))
	}

	ch <- prometheus.MustNewConstMetric(collector.temp, prometheus.GaugeValue, float64(decision.ArraySummary.MaxTemp), string(engine.SourceDrives))
	ch <- prometheus.MustNewConstMetric(collector.temp, prometheus.GaugeValue, float64(decision.CacheSummary.MaxTemp), string(engine.SourceCache))
	ch <- prometheus.MustNewConstMetric(collector.temp, prometheus.GaugeValue, float64(decision.CpuTemp), string(engine.SourceCpu))
}
