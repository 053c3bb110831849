// Package taxonomy holds the static skill catalog: display names grouped
// into categories, categories grouped into departments, plus the
// abbreviation table used during matching. The catalog is built once at
// init and never mutated afterwards.
package taxonomy

import "strings"

// Departments.
const (
	DepartmentTechnology = "technology"
	DepartmentBusiness   = "business"
	DepartmentCreative   = "creative"
	DepartmentHealthcare = "healthcare"
	DepartmentEducation  = "education"
	DepartmentGeneral    = "general"
)

// Entry is a single catalog skill. Name keeps the display casing used in
// output; lookups go through the lower-cased canonical form.
type Entry struct {
	Name       string
	Category   string
	Department string
}

// categories maps category name to its skills and department. Order of
// definition below fixes catalog iteration order.
type category struct {
	name       string
	department string
	skills     []string
}

var categories = []category{
	{"Programming Languages", DepartmentTechnology, []string{
		"Python", "JavaScript", "Java", "C++", "C#", "Go", "Rust", "PHP",
		"Ruby", "Swift", "Kotlin", "TypeScript", "Scala", "Perl", "R",
	}},
	{"Web Development", DepartmentTechnology, []string{
		"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Django",
		"Flask", "Spring", "Express", "jQuery", "Bootstrap", "Tailwind",
		"SASS", "Webpack",
	}},
	{"Databases", DepartmentTechnology, []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle",
		"Cassandra", "Elasticsearch", "DynamoDB", "Firebase", "MariaDB",
		"CouchDB", "SQL",
	}},
	{"Cloud & DevOps", DepartmentTechnology, []string{
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
		"Ansible", "Jenkins", "Git", "CI/CD", "GitHub Actions",
		"GitLab CI", "CircleCI", "Prometheus", "Grafana", "Linux",
	}},
	{"Data Science", DepartmentTechnology, []string{
		"Machine Learning", "Deep Learning", "Data Analysis", "Pandas",
		"NumPy", "TensorFlow", "PyTorch", "Scikit-learn", "Tableau",
		"Power BI", "Statistics", "NLP", "Computer Vision",
	}},
	{"Mobile Development", DepartmentTechnology, []string{
		"iOS", "Android", "React Native", "Flutter", "Xamarin", "Ionic",
	}},
	{"Testing", DepartmentTechnology, []string{
		"Jest", "Mocha", "Selenium", "Cypress", "JUnit", "PyTest",
		"Unit Testing", "Integration Testing",
	}},
	{"Security", DepartmentTechnology, []string{
		"Network Security", "Encryption", "Penetration Testing",
		"Firewalls", "SIEM", "Cybersecurity",
	}},
	{"Tools", DepartmentTechnology, []string{
		"JIRA", "Confluence", "Slack", "Trello", "Asana", "Postman",
		"VS Code", "IntelliJ", "Eclipse",
	}},
	{"Certifications", DepartmentTechnology, []string{
		"AWS Certified", "CISSP", "PMP", "Scrum Master", "CEH",
		"CompTIA", "Cisco Certified", "Azure Certified",
		"Google Cloud Certified",
	}},
	{"Marketing", DepartmentBusiness, []string{
		"Marketing", "SEO", "Social Media", "Content Creation",
		"Analytics", "Branding",
	}},
	{"Finance", DepartmentBusiness, []string{
		"Finance", "Accounting", "Excel", "Financial Analysis",
		"Budgeting", "Forecasting",
	}},
	{"Sales", DepartmentBusiness, []string{
		"Sales", "Negotiation", "Client Management", "CRM",
		"Presentation",
	}},
	{"Human Resources", DepartmentBusiness, []string{
		"Recruitment", "Employee Relations", "Talent Management",
		"Onboarding",
	}},
	{"Design", DepartmentCreative, []string{
		"Photoshop", "Illustrator", "Typography", "Figma", "Adobe XD",
		"Wireframing", "Prototyping", "User Research", "UI/UX",
	}},
	{"Content", DepartmentCreative, []string{
		"Writing", "Editing", "Content Strategy", "Storytelling",
		"Video Editing", "Animation",
	}},
	{"Clinical", DepartmentHealthcare, []string{
		"Patient Care", "Medical Knowledge", "Clinical Research",
		"Medical Records", "Diagnosis",
	}},
	{"Teaching", DepartmentEducation, []string{
		"Teaching", "Curriculum Development", "Assessment",
		"Classroom Management", "Instructional Design", "E-Learning",
	}},
	{"Soft Skills", DepartmentGeneral, []string{
		"Communication", "Teamwork", "Leadership", "Problem Solving",
		"Project Management", "Agile", "Scrum", "Critical Thinking",
		"Time Management", "Adaptability", "Creativity", "Mentoring",
	}},
}

// Variations maps common abbreviations to canonical skill names.
var Variations = map[string]string{
	"js":      "javascript",
	"ts":      "typescript",
	"py":      "python",
	"ml":      "machine learning",
	"dl":      "deep learning",
	"k8s":     "kubernetes",
	"tf":      "tensorflow",
	"sklearn": "scikit-learn",
}

var (
	// entries keeps catalog definition order.
	entries []Entry
	// byCanonical is keyed by the lower-cased display name.
	byCanonical map[string]*Entry
)

func init() {
	byCanonical = make(map[string]*Entry)
	for _, cat := range categories {
		for _, name := range cat.skills {
			key := strings.ToLower(name)
			if _, ok := byCanonical[key]; ok {
				continue
			}
			entries = append(entries, Entry{
				Name:       name,
				Category:   cat.name,
				Department: cat.department,
			})
			byCanonical[key] = &entries[len(entries)-1]
		}
	}
}

// Entries returns all catalog entries in definition order. The returned
// slice must not be modified.
func Entries() []Entry {
	return entries
}

// Lookup resolves a skill name (any casing) or a known abbreviation to its
// catalog entry.
func Lookup(name string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := Variations[key]; ok {
		key = canonical
	}
	e, ok := byCanonical[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len reports the catalog size.
func Len() int {
	return len(entries)
}
