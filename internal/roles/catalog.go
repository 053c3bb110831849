// Package roles scores the role catalog against an extracted skill set
// and returns the top candidate career roles.
package roles

import "github.com/pathpilot/pathpilot/internal/taxonomy"

// Requirement defines one role: the skill tokens it expects, the
// department that scopes its eligibility, and a scoring weight in (0,1].
// Roles with weight >= UniversalWeight are scored regardless of the
// dominant department.
type Requirement struct {
	Name       string
	Skills     []string
	Department string
	Weight     float64
}

// UniversalWeight marks cross-department roles.
const UniversalWeight = 0.8

// Catalog is the static role catalog. Slice order fixes tie-breaks for
// both dominant-department selection and equal scores.
var Catalog = []Requirement{
	{"Software Engineer", []string{"python", "javascript", "java", "git", "sql", "data structures", "algorithms", "oop"}, taxonomy.DepartmentTechnology, 1.0},
	{"Data Scientist", []string{"python", "machine learning", "data analysis", "sql", "statistics", "pandas", "numpy", "visualization"}, taxonomy.DepartmentTechnology, 1.0},
	{"DevOps Engineer", []string{"aws", "docker", "kubernetes", "linux", "ci/cd", "jenkins", "terraform", "ansible", "git"}, taxonomy.DepartmentTechnology, 0.9},
	{"Full Stack Developer", []string{"javascript", "react", "node.js", "html", "css", "sql", "rest apis", "git"}, taxonomy.DepartmentTechnology, 1.0},
	{"Backend Developer", []string{"python", "java", "sql", "django", "flask", "api", "database design", "microservices"}, taxonomy.DepartmentTechnology, 0.9},
	{"Frontend Developer", []string{"javascript", "react", "html", "css", "typescript", "responsive design", "ui/ux"}, taxonomy.DepartmentTechnology, 0.9},
	{"Machine Learning Engineer", []string{"python", "machine learning", "tensorflow", "pytorch", "statistics", "data processing", "model deployment"}, taxonomy.DepartmentTechnology, 0.9},
	{"Cloud Architect", []string{"aws", "azure", "docker", "kubernetes", "networking", "security", "microservices", "cloud design"}, taxonomy.DepartmentTechnology, 0.85},
	{"Security Engineer", []string{"network security", "encryption", "penetration testing", "firewalls", "siem", "incident response"}, taxonomy.DepartmentTechnology, 0.85},
	{"QA Engineer", []string{"testing", "selenium", "jest", "cypress", "automation", "bug tracking", "test planning"}, taxonomy.DepartmentTechnology, 0.8},
	{"Data Engineer", []string{"python", "sql", "etl", "data warehousing", "spark", "hadoop", "kafka", "airflow"}, taxonomy.DepartmentTechnology, 0.85},
	{"Site Reliability Engineer", []string{"linux", "monitoring", "automation", "incident management", "performance tuning", "capacity planning"}, taxonomy.DepartmentTechnology, 0.8},
	{"Product Manager", []string{"project management", "communication", "agile", "leadership", "analytics", "user research", "strategy"}, taxonomy.DepartmentBusiness, 0.9},
	{"Marketing Specialist", []string{"marketing", "social media", "content creation", "analytics", "seo"}, taxonomy.DepartmentBusiness, 0.9},
	{"Financial Analyst", []string{"finance", "accounting", "excel", "financial analysis", "budgeting"}, taxonomy.DepartmentBusiness, 0.9},
	{"Sales Manager", []string{"sales", "negotiation", "client management", "crm", "presentation"}, taxonomy.DepartmentBusiness, 0.85},
	{"HR Manager", []string{"recruitment", "employee relations", "talent management", "onboarding", "communication"}, taxonomy.DepartmentBusiness, 0.85},
	{"Project Manager", []string{"project management", "agile", "scrum", "leadership", "planning"}, taxonomy.DepartmentBusiness, 0.8},
	{"UX/UI Designer", []string{"figma", "adobe xd", "wireframing", "prototyping", "user research", "ui/ux"}, taxonomy.DepartmentCreative, 0.9},
	{"Graphic Designer", []string{"photoshop", "illustrator", "typography", "branding", "design"}, taxonomy.DepartmentCreative, 0.85},
	{"Content Writer", []string{"writing", "editing", "content strategy", "seo", "storytelling"}, taxonomy.DepartmentCreative, 0.85},
	{"Video Editor", []string{"video editing", "animation", "storyboarding"}, taxonomy.DepartmentCreative, 0.75},
	{"Healthcare Professional", []string{"patient care", "medical knowledge", "clinical", "healthcare", "diagnosis"}, taxonomy.DepartmentHealthcare, 0.9},
	{"Healthcare Data Analyst", []string{"data analysis", "healthcare", "medical records", "research", "statistics"}, taxonomy.DepartmentHealthcare, 0.85},
	{"Educator", []string{"teaching", "curriculum development", "assessment", "classroom management"}, taxonomy.DepartmentEducation, 0.9},
	{"Instructional Designer", []string{"instructional design", "e-learning", "curriculum development", "educational technology", "assessment"}, taxonomy.DepartmentEducation, 0.85},
	{"Technical Lead", []string{"architecture", "leadership", "code review", "mentoring", "project planning", "technical strategy"}, taxonomy.DepartmentTechnology, 0.8},
}
