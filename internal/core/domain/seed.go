package domain

// SeedCourse is a built-in sample catalog entry installed by Seed.
type SeedCourse struct {
	Name        string
	Description string
	Keywords    string
}

// SeedCourses returns the built-in sample catalog. Stores install these
// idempotently: an existing course with the same name is left untouched.
func SeedCourses() []SeedCourse {
	return []SeedCourse{
		{"Android Development", "Developing Android applications with Java", "mobile,android,java"},
		{"iOS Development", "iOS applications with Swift", "mobile,ios,swift"},
		{"React Native", "Cross-platform mobile applications", "mobile,react native,cross-platform"},
		{"Data Science", "Data analysis and machine learning with Python", "data science,python,data,ml"},
		{"Game Development", "Game programming with Unity", "game,unity,c#"},
		{"Web Development", "Websites with HTML, CSS, JavaScript", "web,html,css,javascript"},
		{"Python Programming", "Python programming language fundamentals", "python,programming,basics"},
		{"Database Management", "SQL and database design", "database,sql,design"},
	}
}
