package taxonomy

// securityPillar covers system security and risk management. Its practices
// are rated directly on the dashboard and do not expand into aspect
// families.
var securityPillar = Pillar{
	Title:       "Security",
	Description: "System security and risk management",
	Color:       "#D4A5A5",
	Practices: []Practice{
		{
			Name: "Security Governance",
			Key:  "Security Governance",
		},
		{
			Name: "Threat Protection",
			Key:  "Threat Protection",
		},
		{
			Name: "Risk Management",
			Key:  "Risk Management",
		},
	},
}
