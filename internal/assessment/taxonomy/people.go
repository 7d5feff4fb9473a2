package taxonomy

// peoplePillar covers team expertise and AI literacy.
var peoplePillar = Pillar{
	Title:       "People",
	Description: "Team expertise and AI literacy",
	Color:       "#FF6B6B",
	Practices: []Practice{
		{
			Name: "Training",
			Key:  "Training",
			Slug: "training",
			Aspects: []Aspect{
				{Name: "Employee AI Literacy", Description: "Level of understanding and ability to work alongside AI technologies."},
				{Name: "Training Programs", Description: "Availability and effectiveness of AI training and upskilling programs."},
				{Name: "AI Adoption Rate", Description: "Employees are encouraged to and are adopting and utilizing AI solutions."},
				{Name: "Continuous Learning", Description: "Opportunities for continuous learning and upskilling in AI."},
				{Name: "Performance Metrics", Description: "Metrics to measure the effectiveness of training programs."},
				{Name: "Certification Levels", Description: "Attainment of certifications in relevant AI domains."},
				{Name: "Expertise Availability", Description: "Access to in-house or external AI experts for guidance."},
			},
		},
		{
			Name: "Collaboration",
			Key:  "Collaboration",
			Slug: "collaboration",
			Aspects: []Aspect{
				{Name: "Interdisciplinary Teams", Description: "Existence and effectiveness of cross-functional teams."},
				{Name: "External Partnerships", Description: "Relationships with external AI consultants, vendors, and academic institutions."},
				{Name: "Collaboration Tools", Description: "Availability and utilization of collaboration tools."},
				{Name: "Knowledge Sharing", Description: "Platforms and practices for sharing AI knowledge across the organization."},
				{Name: "Project Management", Description: "Effectiveness in managing AI projects across different teams."},
				{Name: "Innovation Culture", Description: "Encouragement and support for innovative ideas and experimentation."},
				{Name: "Feedback Loops", Description: "Mechanisms for collecting and acting on feedback from various stakeholders."},
			},
		},
		{
			Name: "Change Management",
			Key:  "ChangeManagement",
			Slug: "change-management",
			Aspects: []Aspect{
				{Name: "Change Strategy", Description: "Clearly defined and communicated change management strategy for AI transformation."},
				{Name: "Employee Engagement", Description: "Level of employee engagement during AI-driven changes."},
				{Name: "Communication Channels", Description: "Effective communication channels for addressing concerns and sharing progress."},
				{Name: "Change Metrics", Description: "Metrics to evaluate the success of change management initiatives."},
				{Name: "Resistance Management", Description: "Strategies to manage resistance to new AI technologies."},
				{Name: "Support Structures", Description: "Availability of support structures to assist employees during the transition."},
				{Name: "Change Network", Description: "Establishing a network of change advocates within the organization."},
			},
		},
	},
}
