package seed

// Builtin returns the demo roster used when no seed source is configured.
func Builtin() Static {
	return Static{
		{ID: 1, FirstName: "Alice", LastName: "Johnson", Email: "alice.johnson@example.com", Department: "Engineering", Role: "Software Engineer"},
		{ID: 2, FirstName: "Brian", LastName: "Smith", Email: "brian.smith@example.com", Department: "Marketing", Role: "Marketing Manager"},
		{ID: 3, FirstName: "Carla", LastName: "Gomez", Email: "carla.gomez@example.com", Department: "Human Resources", Role: "HR Specialist"},
		{ID: 4, FirstName: "David", LastName: "Kim", Email: "david.kim@example.com", Department: "Finance", Role: "Financial Analyst"},
		{ID: 5, FirstName: "Emma", LastName: "Brown", Email: "emma.brown@example.com", Department: "Engineering", Role: "QA Engineer"},
		{ID: 6, FirstName: "Farid", LastName: "Haddad", Email: "farid.haddad@example.com", Department: "Sales", Role: "Account Executive"},
		{ID: 7, FirstName: "Grace", LastName: "Lee", Email: "grace.lee@example.com", Department: "Engineering", Role: "Engineering Manager"},
		{ID: 8, FirstName: "Hiro", LastName: "Tanaka", Email: "hiro.tanaka@example.com", Department: "Design", Role: "Product Designer"},
		{ID: 9, FirstName: "Isabel", LastName: "Martins", Email: "isabel.martins@example.com", Department: "Finance", Role: "Accountant"},
		{ID: 10, FirstName: "Jack", LastName: "Wilson", Email: "jack.wilson@example.com", Department: "Sales", Role: "Sales Manager"},
		{ID: 11, FirstName: "Kavya", LastName: "Reddy", Email: "kavya.reddy@example.com", Department: "Engineering", Role: "DevOps Engineer"},
		{ID: 12, FirstName: "Liam", LastName: "O'Connor", Email: "liam.oconnor@example.com", Department: "Support", Role: "Support Specialist"},
		{ID: 13, FirstName: "Maya", LastName: "Patel", Email: "maya.patel@example.com", Department: "Marketing", Role: "Content Strategist"},
		{ID: 14, FirstName: "Noah", LastName: "Schmidt", Email: "noah.schmidt@example.com", Department: "Engineering", Role: "Software Engineer"},
		{ID: 15, FirstName: "Olivia", LastName: "Rossi", Email: "olivia.rossi@example.com", Department: "Human Resources", Role: "Recruiter"},
		{ID: 16, FirstName: "Pedro", LastName: "Alvarez", Email: "pedro.alvarez@example.com", Department: "Support", Role: "Support Lead"},
		{ID: 17, FirstName: "Quinn", LastName: "Murphy", Email: "quinn.murphy@example.com", Department: "Design", Role: "UX Researcher"},
		{ID: 18, FirstName: "Rosa", LastName: "Nguyen", Email: "rosa.nguyen@example.com", Department: "Finance", Role: "Controller"},
		{ID: 19, FirstName: "Samuel", LastName: "Okafor", Email: "samuel.okafor@example.com", Department: "Engineering", Role: "Data Engineer"},
		{ID: 20, FirstName: "Tara", LastName: "Singh", Email: "tara.singh@example.com", Department: "Sales", Role: "Sales Representative"},
		{ID: 21, FirstName: "Umar", LastName: "Farooq", Email: "umar.farooq@example.com", Department: "Engineering", Role: "Security Engineer"},
		{ID: 22, FirstName: "Vera", LastName: "Ivanova", Email: "vera.ivanova@example.com", Department: "Marketing", Role: "SEO Specialist"},
		{ID: 23, FirstName: "Wei", LastName: "Zhang", Email: "wei.zhang@example.com", Department: "Engineering", Role: "Frontend Developer"},
		{ID: 24, FirstName: "Ximena", LastName: "Torres", Email: "ximena.torres@example.com", Department: "Legal", Role: "Legal Counsel"},
		{ID: 25, FirstName: "Yusuf", LastName: "Demir", Email: "yusuf.demir@example.com", Department: "Operations", Role: "Operations Manager"},
	}
}
