// Package mockdata generates the synthetic project dataset served by the
// dashboard. There is no real data source: one fixed-size dataset is drawn
// at startup and shared read-only for the life of the process.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"pulseboard/domain/portfolio"
)

// GeneratorConfig configures the mock dataset generator.
type GeneratorConfig struct {
	RecordCount    int       `json:"record_count"`
	LookbackMonths int       `json:"lookback_months"`
	Now            time.Time `json:"now"`
	Seed           int64     `json:"seed"`
}

// DefaultConfig returns sensible defaults for dataset generation. Dates span
// the full twelve-month lookback so every granularity window is populated.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		RecordCount:    220,
		LookbackMonths: 12,
		Now:            time.Now(),
		Seed:           42,
	}
}

// Generator produces synthetic project records. It is deterministic for a
// fixed (Seed, Now) pair, so tests can assert exact outputs.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator seeded from its config.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RecordCount <= 0 {
		config.RecordCount = DefaultConfig().RecordCount
	}
	if config.LookbackMonths <= 0 {
		config.LookbackMonths = DefaultConfig().LookbackMonths
	}
	if config.Now.IsZero() {
		config.Now = time.Now()
	}
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var codenames = []string{
	"Aurora", "Basalt", "Cinder", "Dune", "Ember", "Flint",
	"Garnet", "Harbor", "Icarus", "Juniper", "Kestrel", "Lumen",
}

// Generate draws the configured number of records with uniformly random
// field values across the fixed enumerations and dates uniform within
// [now − lookback, now].
func (g *Generator) Generate() []portfolio.Record {
	start := g.config.Now.AddDate(0, -g.config.LookbackMonths, 0)
	records := make([]portfolio.Record, 0, g.config.RecordCount)
	for i := 0; i < g.config.RecordCount; i++ {
		records = append(records, portfolio.Record{
			ID:       uuid.Must(uuid.NewRandomFromReader(g.rng)).String(),
			Label:    fmt.Sprintf("%s-%03d", codenames[g.rng.Intn(len(codenames))], i+1),
			Industry: pick(g.rng, portfolio.Industries),
			Region:   pick(g.rng, portfolio.Regions()),
			Stage:    pick(g.rng, portfolio.Stages()),
			Date:     g.randomTimeInRange(start, g.config.Now),
			Product:  pick(g.rng, portfolio.Products),
			Expert:   pick(g.rng, portfolio.Experts),
			CSAT:     pick(g.rng, portfolio.CSATLevels),
		})
	}
	return records
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}

func (g *Generator) randomTimeInRange(start, end time.Time) time.Time {
	if start.After(end) {
		start, end = end, start
	}
	duration := end.Sub(start)
	if duration <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rng.Int63n(int64(duration))))
}
