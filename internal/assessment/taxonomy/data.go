package taxonomy

// dataPillar covers data quality and management practices.
var dataPillar = Pillar{
	Title:       "Data",
	Description: "Data quality and management practices",
	Color:       "#45B7D1",
	Practices: []Practice{
		{
			Name: "Data Acquisition",
			Key:  "Data Acquisition",
			Slug: "data-acquisition",
			Aspects: []Aspect{
				{Name: "Data Collection", Description: "Data needed is sourced and available."},
				{Name: "Data Quality Metrics", Description: "Confirm the data is trustworthy to use."},
				{Name: "Data Validation", Description: "Processes for validating and cleaning data."},
				{Name: "Data Annotation", Description: "Tools and processes for annotating data, if necessary."},
				{Name: "Data Updates and Relevance", Description: "Regular updates to ensure data relevance to solutions."},
				{Name: "Data Structure", Description: "Structured and labeling requirements or use of unstructured data."},
				{Name: "Source Diversity", Description: "Variety in data sources to ensure comprehensive data collection."},
			},
		},
		{
			Name: "Data Governance",
			Key:  "DataGovernance",
			Slug: "data-governance",
			Aspects: []Aspect{
				{Name: "Governance Framework", Description: "Established data governance framework with clear policies and procedures."},
				{Name: "Data Ownership", Description: "Defined data ownership and stewardship roles."},
				{Name: "Metadata Management", Description: "Effective metadata management for data discoverability and understanding."},
				{Name: "Data Quality Management", Description: "Processes to ensure and enhance data quality."},
				{Name: "Data Lifecycle Management", Description: "Managing data throughout its lifecycle from collection to deletion."},
				{Name: "Data Governance Tools", Description: "Tools to enforce data governance policies."},
				{Name: "Compliance Monitoring", Description: "Monitoring and ensuring compliance with data governance policies."},
			},
		},
		{
			Name: "Data Privacy",
			Key:  "DataPrivacy",
			Slug: "data-privacy",
			Aspects: []Aspect{
				{Name: "Privacy Policies", Description: "Established and communicated data privacy policies."},
				{Name: "Privacy Measures", Description: "Categorize levels of data privacy."},
				{Name: "Compliance with Laws", Description: "Compliance with data protection laws and regulations (e.g., GDPR, CCPA)."},
				{Name: "Data Encryption", Description: "Encryption of sensitive data both in transit and at rest."},
				{Name: "Access Controls", Description: "Role-based access controls to restrict data access."},
				{Name: "Privacy Auditing", Description: "Test for or scan potential privacy issues in your data."},
				{Name: "Incident Response", Description: "Effective incident response plans for data breaches compromising privacy."},
			},
		},
	},
}
