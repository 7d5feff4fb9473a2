package taxonomy

// pillars is the full taxonomy in dashboard display order.
var pillars = []Pillar{
	peoplePillar,
	strategyPillar,
	dataPillar,
	legalPillar,
	solutionPillar,
	securityPillar,
}
