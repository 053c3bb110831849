package courses

// catalog maps lowercase skill keys to curated course titles, ordered by
// preference.
var catalog = map[string][]string{
	"python":           {"Python for Everybody – Coursera", "Complete Python Bootcamp – Udemy", "Advanced Python – Pluralsight"},
	"javascript":       {"Modern JavaScript – The Odin Project", "JavaScript: The Advanced Concepts – ZeroToMastery", "JavaScript Algorithms – freeCodeCamp"},
	"react":            {"React – The Complete Guide – Udemy", "Modern React with Redux – Stephen Grider", "React Documentation – Official"},
	"sql":              {"The Complete SQL Bootcamp – Udemy", "SQL for Data Analysis – Mode Analytics", "Advanced SQL – Stanford Online"},
	"aws":              {"AWS Certified Solutions Architect – AWS Training", "AWS Essentials – freeCodeCamp", "AWS Developer – A Cloud Guru"},
	"docker":           {"Docker & Kubernetes: The Practical Guide – Udemy", "Docker Mastery – Bret Fisher", "Containerization – Coursera"},
	"machine learning": {"Machine Learning Specialization – Andrew Ng", "Deep Learning A-Z – Udemy", "ML Crash Course – Google"},
	"data analysis":    {"Data Analysis with Python – freeCodeCamp", "Pandas Tutorial – Kaggle", "Data Science Bootcamp – Jovian"},
	"devops":           {"DevOps Bootcamp – TechWorld with Nana", "CI/CD with Jenkins – Udemy", "Terraform – HashiCorp Learn"},
	"java":             {"Java Programming Masterclass – Udemy", "Spring Framework – Baeldung", "Java Certification – Oracle"},
	"git":              {"Git & GitHub – freeCodeCamp", "Pro Git Book – Official", "Git Branching – Interactive Tutorial"},
	"flask":            {"Flask Mega-Tutorial – Miguel Grinberg", "REST APIs with Flask – Corey Schafer", "Flask Documentation"},
	"django":           {"Django for Beginners – WS Vincent", "Django REST Framework – Udemy", "Django Girls Tutorial"},
	"html":             {"HTML & CSS – freeCodeCamp", "Web Design – The Odin Project", "HTML5 – MDN Web Docs"},
	"css":              {"CSS Complete Guide – Udemy", "Flexbox & Grid – CSS Tricks", "Tailwind CSS – Official"},
	"node.js":          {"Node.js Tutorial – The Net Ninja", "Express.js – MDN", "Node.js API Masterclass – Udemy"},
	"typescript":       {"TypeScript Handbook – Official", "Understanding TypeScript – Udemy", "TypeScript with React"},
	"mongodb":          {"MongoDB University – Official", "Mongoose – Udemy", "NoSQL Databases – Coursera"},
	"postgresql":       {"PostgreSQL Bootcamp – Udemy", "SQL & PostgreSQL – freeCodeCamp", "Database Design"},
	"tensorflow":       {"TensorFlow Developer Certificate", "Deep Learning with TF – Coursera", "TF Official Tutorials"},
}

// catalogOrder fixes iteration order over the catalog so recommendations
// are deterministic.
var catalogOrder = []string{
	"python", "javascript", "react", "sql", "aws", "docker",
	"machine learning", "data analysis", "devops", "java", "git",
	"flask", "django", "html", "css", "node.js", "typescript",
	"mongodb", "postgresql", "tensorflow",
}

// popular is the fallback list for resumes whose skills match nothing in
// the catalog.
var popular = []Item{
	{Skill: "Python", Title: "Python for Everybody – Coursera"},
	{Skill: "JavaScript", Title: "Modern JavaScript – The Odin Project"},
	{Skill: "SQL", Title: "The Complete SQL Bootcamp – Udemy"},
	{Skill: "AWS", Title: "AWS Certified Solutions Architect – AWS Training"},
	{Skill: "React", Title: "React – The Complete Guide – Udemy"},
}
