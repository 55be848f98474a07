package metrics

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Dump logs every gathered metric sample. Used by the CLI at end of run; a
// long-lived embedder would scrape the default registry instead.
func Dump(log *slog.Logger) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Error("gather metrics", "error", err)
		return
	}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			attrs := []any{}
			for _, l := range m.GetLabel() {
				attrs = append(attrs, l.GetName(), l.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				attrs = append(attrs, "value", m.GetGauge().GetValue())
			default:
				continue
			}
			log.Info(fam.GetName(), attrs...)
		}
	}
}
