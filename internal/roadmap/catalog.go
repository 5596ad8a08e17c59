// internal/roadmap/catalog.go
package roadmap

// The seven fixed pillars of organizational AI capability, in canonical
// presentation order. Free-text pillar names outside this list fall back
// to the generic catalog entry.
const (
	PillarStrategy   = "Strategy"
	PillarData       = "Data"
	PillarTechnology = "Technology"
	PillarTalent     = "Talent"
	PillarGovernance = "Governance"
	PillarOperations = "Operations"
	PillarCulture    = "Culture"
)

// CanonicalPillars lists the known pillars in presentation order.
var CanonicalPillars = []string{
	PillarStrategy,
	PillarData,
	PillarTechnology,
	PillarTalent,
	PillarGovernance,
	PillarOperations,
	PillarCulture,
}

// catalogEntry holds the static lookup content for one pillar: stage
// names with their milestone lists (indexed by stage position) and the
// pillar's KPI set.
type catalogEntry struct {
	stageNames []string
	milestones [][]string
	kpis       []string
}

// genericEntry serves any pillar that is absent from the catalog, and
// any stage index beyond a pillar's authored stage count.
var genericEntry = catalogEntry{
	stageNames: []string{"Assessment", "Planning", "Implementation", "Optimization"},
	milestones: [][]string{
		{"Complete capability assessment", "Document current gaps", "Align stakeholders on scope"},
		{"Define target operating model", "Prioritize initiatives", "Secure budget and sponsorship"},
		{"Execute priority initiatives", "Track milestone completion", "Address blockers and risks"},
		{"Measure outcomes against targets", "Refine processes from learnings", "Scale proven practices"},
	},
	kpis: []string{
		"Maturity level progression",
		"Initiative completion rate",
		"Stakeholder satisfaction score",
	},
}

// pillarCatalog is the single data-driven content table keyed by pillar
// name. Stage counts per pillar are capped at MaxStages; missing indices
// resolve through genericEntry.
var pillarCatalog = map[string]catalogEntry{
	PillarStrategy: {
		stageNames: []string{"AI Vision Definition", "Strategic Alignment", "Portfolio Rollout", "Strategy Refresh"},
		milestones: [][]string{
			{"Draft AI vision statement", "Map AI opportunities to business goals", "Gain executive sponsorship"},
			{"Align AI initiatives with corporate strategy", "Define success metrics", "Establish steering committee"},
			{"Launch prioritized AI initiatives", "Review portfolio quarterly", "Reallocate investment by results"},
			{"Refresh strategy from market signals", "Sunset low-value initiatives", "Expand proven programs"},
		},
		kpis: []string{
			"Percentage of business units with AI initiatives",
			"AI investment as share of technology budget",
			"Executive engagement in AI governance forums",
		},
	},
	PillarData: {
		stageNames: []string{"Data Audit", "Data Foundation", "Data Products", "Data Excellence"},
		milestones: [][]string{
			{"Inventory data sources and owners", "Assess data quality baselines", "Identify critical data gaps"},
			{"Stand up central data platform", "Define data quality standards", "Implement access controls"},
			{"Publish curated data products", "Automate quality monitoring", "Enable self-service analytics"},
			{"Optimize storage and pipeline costs", "Institute data stewardship reviews", "Certify golden datasets"},
		},
		kpis: []string{
			"Data quality score across critical datasets",
			"Time to provision data for new use cases",
			"Share of decisions backed by governed data",
		},
	},
	PillarTechnology: {
		stageNames: []string{"Platform Assessment", "Infrastructure Buildout", "MLOps Adoption", "Platform Optimization"},
		milestones: [][]string{
			{"Audit current tooling and compute", "Benchmark against target architecture", "Select platform candidates"},
			{"Provision scalable compute environment", "Integrate model development tooling", "Establish environment promotion path"},
			{"Automate model deployment pipelines", "Introduce model monitoring", "Standardize experiment tracking"},
			{"Tune infrastructure utilization", "Consolidate redundant tooling", "Negotiate capacity commitments"},
		},
		kpis: []string{
			"Model deployment lead time",
			"Platform availability for AI workloads",
			"Compute cost per model in production",
		},
	},
	PillarTalent: {
		stageNames: []string{"Skills Assessment", "Capability Building", "Team Scaling", "Talent Retention"},
		milestones: [][]string{
			{"Map current AI skills inventory", "Identify critical role gaps", "Define competency framework"},
			{"Launch AI literacy curriculum", "Upskill priority teams", "Establish mentoring pairs"},
			{"Hire specialist roles", "Embed AI practitioners in business units", "Create communities of practice"},
			{"Define AI career pathways", "Benchmark compensation", "Measure and act on attrition drivers"},
		},
		kpis: []string{
			"Employees completing AI training programs",
			"Time to fill specialist AI roles",
			"Retention rate of AI practitioners",
		},
	},
	PillarGovernance: {
		stageNames: []string{"Risk Baseline", "Policy Framework", "Controls Rollout", "Continuous Assurance"},
		milestones: [][]string{
			{"Catalog AI use cases and risks", "Review regulatory obligations", "Assess current policy coverage"},
			{"Publish responsible AI policy", "Define model review gates", "Assign accountability owners"},
			{"Operationalize review workflows", "Train teams on policy compliance", "Instrument audit trails"},
			{"Run periodic model audits", "Track incidents and remediations", "Update policies with regulation"},
		},
		kpis: []string{
			"Share of models passing governance review",
			"Mean time to resolve AI incidents",
			"Policy compliance audit score",
		},
	},
	PillarOperations: {
		stageNames: []string{"Process Mapping", "Workflow Redesign", "Automation Rollout", "Operational Excellence"},
		milestones: [][]string{
			{"Map candidate processes end to end", "Quantify automation potential", "Select pilot processes"},
			{"Redesign workflows around AI assistance", "Define human-in-the-loop checkpoints", "Set service-level targets"},
			{"Deploy automation to pilot processes", "Monitor exception rates", "Expand to adjacent processes"},
			{"Tune automation thresholds", "Retire manual fallbacks where safe", "Standardize playbooks"},
		},
		kpis: []string{
			"Process cycle-time reduction",
			"Automation exception rate",
			"Cost per transaction for automated processes",
		},
	},
	PillarCulture: {
		stageNames: []string{"Readiness Pulse", "Change Program", "Adoption Push", "Culture Embedding"},
		milestones: [][]string{
			{"Survey AI sentiment and concerns", "Identify change champions", "Baseline adoption metrics"},
			{"Run leadership alignment sessions", "Communicate AI vision broadly", "Address workforce concerns openly"},
			{"Celebrate early wins visibly", "Embed AI tools in daily workflows", "Collect and act on user feedback"},
			{"Recognize AI-driven contributions", "Institutionalize experimentation time", "Track cultural health over time"},
		},
		kpis: []string{
			"Weekly active users of AI tooling",
			"Employee AI sentiment score",
			"Grassroots AI experiments initiated",
		},
	},
}

// StageName resolves the stage label for a pillar and stage index,
// falling back to the generic naming scheme. Total for any input.
func StageName(pillar string, stageIndex int) string {
	entry, ok := pillarCatalog[pillar]
	if ok && stageIndex >= 0 && stageIndex < len(entry.stageNames) {
		return entry.stageNames[stageIndex]
	}
	if stageIndex >= 0 && stageIndex < len(genericEntry.stageNames) {
		return genericEntry.stageNames[stageIndex]
	}
	if stageIndex < 0 {
		return genericEntry.stageNames[0]
	}
	return genericEntry.stageNames[len(genericEntry.stageNames)-1]
}

// StageMilestones resolves the milestone list for a pillar and stage
// index with the same fallback rules as StageName. The returned slice
// is a copy; callers may append freely.
func StageMilestones(pillar string, stageIndex int) []string {
	source := genericEntry.milestones
	if entry, ok := pillarCatalog[pillar]; ok && stageIndex >= 0 && stageIndex < len(entry.milestones) {
		source = entry.milestones
	} else if stageIndex < 0 {
		stageIndex = 0
	} else if stageIndex >= len(genericEntry.milestones) {
		stageIndex = len(genericEntry.milestones) - 1
	}
	out := make([]string, len(source[stageIndex]))
	copy(out, source[stageIndex])
	return out
}

// PillarKPIs resolves the KPI set for a pillar, falling back to three
// generic KPI strings for unknown pillars.
func PillarKPIs(pillar string) []string {
	entry, ok := pillarCatalog[pillar]
	if !ok {
		entry = genericEntry
	}
	out := make([]string, len(entry.kpis))
	copy(out, entry.kpis)
	return out
}

// IsCanonicalPillar reports whether name is one of the seven fixed
// pillars.
func IsCanonicalPillar(name string) bool {
	_, ok := pillarCatalog[name]
	return ok
}
