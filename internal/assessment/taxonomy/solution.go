package taxonomy

// solutionPillar covers AI system effectiveness and reliability.
var solutionPillar = Pillar{
	Title:       "Solution",
	Description: "AI system effectiveness and reliability",
	Color:       "#FFEEAD",
	Practices: []Practice{
		{
			Name: "Infrastructure",
			Key:  "Infrastructure",
			Slug: "infrastructure",
			Aspects: []Aspect{
				{Name: "Scalable Infrastructure", Description: "Infrastructure that can scale with growing AI needs."},
				{Name: "Performance Monitoring", Description: "Tools and processes to monitor infrastructure performance."},
				{Name: "Resource Allocation", Description: "Adequate allocation of resources (e.g., computing, storage)."},
				{Name: "Cost Management", Description: "Monitoring and managing infrastructure costs."},
				{Name: "Cloud Adoption", Description: "Leveraging cloud resources for better scalability and performance."},
				{Name: "Security Measures", Description: "Security measures to protect infrastructure."},
				{Name: "Disaster Recovery", Description: "Effective disaster recovery and backup solutions."},
			},
		},
		{
			Name: "Model Development",
			Key:  "ModelDevelopment",
			Slug: "model-development",
			Aspects: []Aspect{
				{Name: "Development Tools", Description: "Availability and usability of tools for model development."},
				{Name: "Model Validation", Description: "Robust processes for model validation and testing."},
				{Name: "Hyperparameter Tuning", Description: "Efficient hyperparameter tuning to optimize model performance."},
				{Name: "Experiment Tracking", Description: "Tools and processes for tracking model development experiments."},
				{Name: "Version Control", Description: "Version control systems for models and training datasets."},
				{Name: "Resource Monitoring", Description: "Monitoring resources during model training."},
				{Name: "Training Data", Description: "Adequacy and relevance of training data."},
			},
		},
		{
			Name: "Deployment & Monitoring",
			Key:  "DeploymentMonitoring",
			Slug: "deployment-monitoring",
			Aspects: []Aspect{
				{Name: "MLOps Processes", Description: "Established MLOps processes for model deployment and monitoring."},
				{Name: "Deployment Automation", Description: "Automated processes for deploying models to production."},
				{Name: "Performance Monitoring", Description: "Continuous monitoring of model performance in production."},
				{Name: "Feedback Loops", Description: "Feedback loops for continuous model improvement."},
				{Name: "Model Updating", Description: "Processes for updating models with new data or parameters."},
				{Name: "Model Explainability", Description: "Explainability of AI models to stakeholders."},
				{Name: "Deployment Documentation", Description: "Documentation covering model deployment and operational procedures."},
			},
		},
	},
}
