package orchestration

import (
	"github.com/agbru/mulbench/internal/config"
	"github.com/agbru/mulbench/internal/multiply"
)

// GetMultipliersToRun resolves cfg.Algo against the factory. "all" selects
// every registered multiplier in List order; an unknown name selects none.
func GetMultipliersToRun(cfg config.AppConfig, factory multiply.Factory) []multiply.Multiplier {
	names := selectedNames(cfg, factory)
	out := make([]multiply.Multiplier, 0, len(names))
	for _, name := range names {
		if m, err := factory.Get(name); err == nil {
			out = append(out, m)
		}
	}
	return out
}

// GetAlgorithmsToRun is GetMultipliersToRun for the uninstrumented
// algorithms that the benchmark harness times directly.
func GetAlgorithmsToRun(cfg config.AppConfig, factory multiply.Factory) []multiply.Algorithm {
	names := selectedNames(cfg, factory)
	out := make([]multiply.Algorithm, 0, len(names))
	for _, name := range names {
		if a, err := factory.Algorithm(name); err == nil {
			out = append(out, a)
		}
	}
	return out
}

func selectedNames(cfg config.AppConfig, factory multiply.Factory) []string {
	if cfg.Algo == "" || cfg.Algo == config.DefaultAlgo {
		return factory.List()
	}
	return []string{cfg.Algo}
}
