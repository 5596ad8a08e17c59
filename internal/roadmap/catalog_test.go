// internal/roadmap/catalog_test.go
package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_TotalForCanonicalPillars(t *testing.T) {
	for _, pillar := range CanonicalPillars {
		assert.True(t, IsCanonicalPillar(pillar))
		for i := 0; i < MaxStages; i++ {
			assert.NotEmpty(t, StageName(pillar, i), "%s stage %d name", pillar, i)
			assert.NotEmpty(t, StageMilestones(pillar, i), "%s stage %d milestones", pillar, i)
		}
		kpis := PillarKPIs(pillar)
		assert.Len(t, kpis, 3, "%s KPIs", pillar)
	}
}

func TestCatalog_GenericFallback(t *testing.T) {
	// Free-text pillar names resolve through the generic entry.
	assert.False(t, IsCanonicalPillar("Quantum Readiness"))

	assert.Equal(t, "Assessment", StageName("Quantum Readiness", 0))
	assert.Equal(t, "Planning", StageName("Quantum Readiness", 1))
	assert.Equal(t, "Implementation", StageName("Quantum Readiness", 2))
	assert.Equal(t, "Optimization", StageName("Quantum Readiness", 3))

	assert.NotEmpty(t, StageMilestones("Quantum Readiness", 2))
	assert.Len(t, PillarKPIs("Quantum Readiness"), 3)
}

func TestCatalog_OutOfRangeStageIndex(t *testing.T) {
	// Indices beyond the authored stage count clamp to the last entry
	// instead of failing: the lookup must be total.
	assert.Equal(t, "Optimization", StageName(PillarData, 10))
	assert.NotEmpty(t, StageMilestones(PillarData, 10))
	assert.NotEmpty(t, StageName("", -1))
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	kpis := PillarKPIs(PillarData)
	kpis[0] = "mutated"
	assert.NotEqual(t, "mutated", PillarKPIs(PillarData)[0])

	ms := StageMilestones(PillarData, 0)
	ms[0] = "mutated"
	assert.NotEqual(t, "mutated", StageMilestones(PillarData, 0)[0])
}
