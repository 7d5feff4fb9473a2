package taxonomy

// legalPillar covers compliance and regulatory adherence.
var legalPillar = Pillar{
	Title:       "Legal",
	Description: "Compliance and regulatory adherence",
	Color:       "#96CEB4",
	Practices: []Practice{
		{
			Name: "Compliance & Regulation",
			Key:  "ComplianceRegulation",
			Slug: "compliance-regulation",
			Aspects: []Aspect{
				{Name: "Regulatory Awareness", Description: "Staying updated on local and global AI regulations."},
				{Name: "Compliance Monitoring", Description: "Processes to ensure AI solutions are compliant with relevant regulations."},
				{Name: "Legal Support", Description: "Access to legal support for AI compliance and regulation issues."},
				{Name: "Documentation", Description: "Proper documentation for AI systems to demonstrate compliance."},
				{Name: "Regulatory Engagement", Description: "Engaging with regulatory bodies and participating in industry groups."},
				{Name: "Audit Trails", Description: "Maintaining audit trails for critical AI decisions and actions."},
				{Name: "Reporting Mechanisms", Description: "Effective reporting mechanisms to report compliance status to stakeholders."},
			},
		},
		{
			Name: "Ethical Considerations",
			Key:  "EthicalConsiderations",
			Slug: "ethical-considerations",
			Aspects: []Aspect{
				{Name: "Ethics Guidelines", Description: "Defined and communicated AI ethics guidelines."},
				{Name: "Ethics Board", Description: "An established board to review and approve AI projects for ethical considerations."},
				{Name: "Ethical Training", Description: "Training on AI ethics for relevant stakeholders."},
				{Name: "Ethical Audits", Description: "Regular audits to ensure AI solutions adhere to ethical guidelines."},
				{Name: "Bias Mitigation", Description: "Processes to identify and mitigate unintentional biases in AI systems."},
				{Name: "Transparency", Description: "Transparency to stakeholders on how AI systems operate and make decisions."},
				{Name: "Public Engagement", Description: "Engagement with the public or external experts on AI ethics."},
			},
		},
		{
			Name: "Intellectual Property",
			Key:  "IntellectualProperty",
			Slug: "intellectual-property",
			Aspects: []Aspect{
				{Name: "IP Policies", Description: "Clearly defined policies regarding AI-generated content and data."},
				{Name: "Contract Clarity", Description: "Clear contracts regarding IP ownership with third-party vendors."},
				{Name: "IP Protection", Description: "Mechanisms for protecting AI-generated IP."},
				{Name: "Licensing Agreements", Description: "Proper licensing agreements for AI technologies and datasets."},
				{Name: "Legal Review", Description: "Regular legal review of IP issues related to AI."},
				{Name: "IP Education", Description: "Training on IP considerations for relevant stakeholders."},
				{Name: "IP Compliance", Description: "Monitoring and ensuring compliance with IP policies and laws."},
			},
		},
	},
}
