package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/domain/portfolio"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestGenerator_DeterministicForFixedSeed(t *testing.T) {
	config := GeneratorConfig{RecordCount: 50, Now: testNow, Seed: 42}

	first := NewGenerator(config).Generate()
	second := NewGenerator(config).Generate()

	require.Equal(t, first, second, "same (seed, now) must reproduce the same dataset")
}

func TestGenerator_SeedsDiverge(t *testing.T) {
	a := NewGenerator(GeneratorConfig{RecordCount: 50, Now: testNow, Seed: 1}).Generate()
	b := NewGenerator(GeneratorConfig{RecordCount: 50, Now: testNow, Seed: 2}).Generate()
	assert.NotEqual(t, a, b)
}

func TestGenerator_RecordShape(t *testing.T) {
	config := DefaultConfig()
	config.Now = testNow
	records := NewGenerator(config).Generate()

	require.Len(t, records, 220)

	industries := toSet(portfolio.Industries)
	products := toSet(portfolio.Products)
	experts := toSet(portfolio.Experts)
	csat := toSet(portfolio.CSATLevels)
	earliest := testNow.AddDate(0, -12, 0)

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		assert.NotEmpty(t, rec.ID)
		assert.False(t, seen[rec.ID], "duplicate record ID %s", rec.ID)
		seen[rec.ID] = true

		assert.NotEmpty(t, rec.Label)
		assert.True(t, industries[rec.Industry], "unknown industry %q", rec.Industry)
		assert.True(t, products[rec.Product], "unknown product %q", rec.Product)
		assert.True(t, experts[rec.Expert], "unknown expert %q", rec.Expert)
		assert.True(t, csat[rec.CSAT], "unknown CSAT symbol %q", rec.CSAT)

		_, stageOK := portfolio.ParseStage(string(rec.Stage))
		assert.True(t, stageOK, "unknown stage %q", rec.Stage)
		_, regionOK := portfolio.ParseRegion(string(rec.Region))
		assert.True(t, regionOK, "unknown region %q", rec.Region)

		assert.False(t, rec.Date.Before(earliest), "record dated %s predates the window", rec.Date)
		assert.False(t, rec.Date.After(testNow), "record dated %s is in the future", rec.Date)
	}
}

func TestNewGenerator_BackfillsZeroConfig(t *testing.T) {
	g := NewGenerator(GeneratorConfig{Seed: 3})
	records := g.Generate()
	assert.Len(t, records, DefaultConfig().RecordCount)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
