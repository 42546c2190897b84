// Package extract pulls structured entities out of normalized documents
// using a fixed taxonomy plus alias and acronym tables.
package extract

import "github.com/jonathan/ats-engine/internal/types"

// The taxonomy below is data, not behavior: terms are stored in their
// canonical form (lowercase, US spelling) and extended without code change.

var hardSkills = termSet(
	// languages
	"python", "java", "javascript", "typescript", "cpp", "csharp", "fsharp",
	"ruby", "go", "rust", "scala", "kotlin", "swift", "php", "r", "matlab",
	"bash", "powershell", "sql",
	// web
	"html", "css", "react", "reactjs", "angular", "vue", "svelte", "nextjs",
	"nodejs", "express", "jquery", "webpack",
	// backend
	"django", "flask", "fastapi", "spring", "spring boot", "rails", "laravel",
	"dotnet", "gin", "echo",
	// data stores
	"mysql", "postgresql", "oracle", "sqlite", "mongodb", "redis",
	"elasticsearch", "cassandra", "dynamodb", "neo4j", "graphql", "snowflake",
	"bigquery",
	// cloud and devops
	"amazon web services", "microsoft azure", "google cloud platform",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "helm",
	"prometheus", "grafana", "github actions", "gitlab ci", "cloudformation",
	"serverless", "microservices",
	// data science
	"machine learning", "artificial intelligence", "deep learning",
	"neural networks", "tensorflow",
	"pytorch", "keras", "scikit-learn", "pandas", "numpy",
	"natural language processing", "computer vision", "data engineering",
	"data pipeline", "extract transform load", "spark", "kafka", "airflow",
	"large language models", "embeddings",
	// search / marketing tech
	"search engine optimization",
	// quality and security
	"unit testing", "integration testing", "selenium", "cypress", "pytest",
	"test automation", "penetration testing", "encryption", "authentication",
	"oauth", "json web token", "single sign-on",
	// apis
	"rest api", "grpc", "soap", "websockets", "json", "xml", "yaml", "openapi",
	// other
	"linux", "nginx", "networking", "load balancing", "caching",
	"business intelligence", "data visualization", "excel", "tableau",
	"power bi",
)

var softSkills = termSet(
	"communication", "presentation", "public speaking", "technical writing",
	"negotiation", "leadership", "people management", "mentoring", "coaching",
	"decision making", "strategic thinking", "teamwork", "collaboration",
	"stakeholder management", "conflict resolution", "problem solving",
	"critical thinking", "analytical thinking", "troubleshooting",
	"root cause analysis", "creativity", "innovation", "planning",
	"project management",
	"prioritization", "time management", "attention to detail", "adaptability",
	"flexibility", "resilience", "initiative", "ownership", "self-starter",
	"customer service", "customer focus", "empathy",
)

var certifications = termSet(
	"aws certified", "aws solutions architect", "aws developer",
	"azure administrator", "azure solutions architect",
	"google cloud certified", "professional cloud architect",
	"professional data engineer", "oracle certified", "microsoft certified",
	"salesforce certified", "project management professional", "prince2",
	"certified scrum master", "safe agilist", "six sigma", "cissp", "cism",
	"certified ethical hacker", "comptia security+", "ccna", "ccnp",
	"certified kubernetes administrator", "terraform certified", "itil",
	"togaf", "iso 27001",
)

var methodologies = termSet(
	"agile", "scrum", "kanban", "lean", "extreme programming", "waterfall",
	"test driven development", "behavior driven development",
	"domain driven design", "pair programming", "code review", "gitflow",
	"devops", "site reliability engineering", "cicd",
	"continuous integration", "continuous deployment", "continuous delivery",
	"infrastructure as code", "gitops", "event sourcing", "design thinking",
)

var domains = termSet(
	"fintech", "banking", "financial services", "insurance", "payments",
	"trading", "risk management", "compliance", "fraud detection",
	"healthcare", "pharmaceutical", "biotech", "telehealth", "e-commerce",
	"retail", "marketplace", "supply chain", "logistics", "saas",
	"enterprise software", "media", "streaming", "gaming", "advertising",
	"edtech", "education", "government", "public sector", "automotive",
	"manufacturing", "energy", "real estate", "travel", "hospitality",
	"telecommunications", "consulting",
)

var tools = termSet(
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack",
	"postman", "visual studio code", "intellij", "pycharm", "figma", "sketch",
	"photoshop", "looker", "metabase", "datadog", "splunk", "vim",
)

var titles = termSet(
	"software engineer", "senior software engineer", "staff engineer",
	"principal engineer", "backend engineer", "frontend engineer",
	"full stack engineer", "devops engineer", "platform engineer",
	"site reliability engineer", "data engineer", "data scientist",
	"data analyst", "machine learning engineer", "engineering manager",
	"product manager", "project manager", "program manager",
	"technical lead", "solutions architect", "security engineer",
	"qa engineer",
)

// kindTaxonomy binds each entity kind to its term set, in extraction order.
var kindTaxonomy = []struct {
	kind  types.EntityKind
	terms map[string]bool
}{
	{types.KindHardSkill, hardSkills},
	{types.KindSoftSkill, softSkills},
	{types.KindCertification, certifications},
	{types.KindMethodology, methodologies},
	{types.KindDomain, domains},
	{types.KindTool, tools},
	{types.KindTitle, titles},
}

func termSet(terms ...string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}
