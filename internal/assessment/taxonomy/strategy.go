package taxonomy

// strategyPillar covers AI implementation and business alignment.
var strategyPillar = Pillar{
	Title:       "Strategy",
	Description: "AI implementation and business alignment",
	Color:       "#4ECDC4",
	Practices: []Practice{
		{
			Name: "Business Alignment",
			Key:  "Business Alignment",
			Slug: "business-alignment",
			Aspects: []Aspect{
				{Name: "Business Objectives", Description: "Clear definition of how AI aligns with overall business objectives."},
				{Name: "Value Proposition", Description: "Demonstrated value provided by Generative AI solutions."},
				{Name: "ROI Measurement", Description: "Metrics and methods for measuring ROI of AI initiatives."},
				{Name: "Alignment Meetings", Description: "Regular alignment meetings between AI teams and business stakeholders."},
				{Name: "Use Case Identification", Description: "Effective processes for identifying and prioritizing AI use cases."},
				{Name: "AI Roadmap", Description: "A well-defined roadmap detailing AI implementation phases."},
				{Name: "Stakeholder Buy-in", Description: "Level of support from key stakeholders across the organization."},
			},
		},
		{
			Name: "Innovation",
			Key:  "Innovation",
			Slug: "innovation",
			Aspects: []Aspect{
				{Name: "Innovation Labs", Description: "Existence and utilization of innovation labs for testing AI solutions."},
				{Name: "Agile Methodology", Description: "Adoption of agile methodologies in AI development cycles."},
				{Name: "Proof of Concept (POC) Processes", Description: "Structured processes for developing and evaluating POCs."},
				{Name: "Risk Tolerance", Description: "Willingness to invest in innovative but risky AI projects."},
				{Name: "Idea Generation", Description: "Processes for generating and evaluating new AI ideas."},
				{Name: "Experimentation Culture", Description: "Encouragement of experimentation and learning from failures."},
				{Name: "Scalability Assessments", Description: "Processes to assess the scalability of innovative solutions."},
			},
		},
		{
			Name: "Scalability",
			Key:  "Scalability",
			Slug: "scalability",
			Aspects: []Aspect{
				{Name: "Capacity Planning", Description: "Forecasting and planning for growth in AI workloads."},
				{Name: "Pilot-to-Production Path", Description: "Defined path for scaling successful pilots into production solutions."},
				{Name: "Reusable Components", Description: "Shared, reusable components and services across AI projects."},
				{Name: "Automation Readiness", Description: "Automation of repeatable steps when scaling AI solutions."},
				{Name: "Cross-Team Standards", Description: "Common standards that let solutions scale across teams."},
				{Name: "Performance Under Load", Description: "Solutions maintain performance as usage grows."},
				{Name: "Scaling Governance", Description: "Decision process for selecting which solutions are scaled."},
			},
		},
	},
}
