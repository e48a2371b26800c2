package dataset

import "github.com/poiesic/faqit/core"

// English returns a fresh copy of the built-in English corpus.
func English() []*core.Entry {
	return []*core.Entry{
		{
			Locale:   core.LocaleEnglish,
			Question: "What does Visual Alpha do?",
			Answer: "Visual Alpha is a Tokyo-based B2B fintech startup offering comprehensive SaaS data solutions that revolutionize how institutional investors and asset managers handle their data operations. " +
				"Our AI-powered platform automates complex data processing, generates automated reports, and provides real-time portfolio monitoring capabilities. " +
				"We specialize in transforming unstructured financial data into actionable insights, reducing manual Excel work by up to 80% for investment teams. " +
				"Our solutions integrate seamlessly with existing systems and provide scalable infrastructure for managing large-scale institutional portfolios.",
			Category:      "company_overview",
			ImagePath:     "images/company_overview.png",
			RelatedTopics: []string{"services", "technology", "automation"},
			Keywords:      []string{"do", "does", "company", "business", "about", "overview", "services", "visual", "alpha", "fintech"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "What are Visual Alpha's future goals?",
			Answer: "Visual Alpha aims to expand its client base among global firms, bringing its data-driven solutions to a broader international audience. " +
				"By partnering with leading organizations worldwide, the company plans to strengthen its presence in the global financial ecosystem and continue innovating to meet the evolving needs of institutional clients.",
			Category:      "future_goals",
			ImagePath:     "images/future_goals.png",
			RelatedTopics: []string{"global expansion", "clients", "growth", "international"},
			Keywords:      []string{"future", "goals", "expansion", "global", "plans", "vision", "roadmap"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "When was Visual Alpha founded?",
			Answer: "Visual Alpha was established in December 2019 in Tokyo, Japan, during a period of significant digital transformation in the financial sector. " +
				"Since our founding, we have experienced rapid growth, expanding our client base and technology capabilities. " +
				"The company was born from the vision of creating more efficient, transparent, and automated solutions for institutional investment management. " +
				"Our founders leveraged their extensive experience in investment management and data systems to address the growing need for sophisticated fintech solutions in the Japanese market.",
			Category:      "company_history",
			ImagePath:     "images/company_timeline.png",
			RelatedTopics: []string{"founding", "growth", "tokyo"},
			Keywords:      []string{"founded", "when", "established", "started", "history", "2019", "origin"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "How large is the Visual Alpha team?",
			Answer: "As of 2025, Visual Alpha employs around 15-20 highly skilled professionals, including board directors, technical advisors, and core staff members. " +
				"Our team represents a diverse, internationally-minded workforce with expertise spanning fintech, data science, software engineering, and financial services. " +
				"We maintain a lean but highly effective organizational structure, with team members bringing experience from leading global financial institutions, technology companies, and consulting firms. " +
				"Our collaborative culture emphasizes innovation, continuous learning, and delivering exceptional value to our institutional clients.",
			Category:      "team_info",
			ImagePath:     "images/team_structure.png",
			RelatedTopics: []string{"staff", "expertise", "culture"},
			Keywords:      []string{"team", "staff", "employees", "people", "size", "members", "workforce"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "Who leads Visual Alpha?",
			Answer: "Visual Alpha is led by CEO Jeffrey Tsui, a seasoned professional with extensive experience in investment management data systems and financial technology. " +
				"Before founding Visual Alpha, Jeffrey worked with prestigious organizations including State Street Corporation and Wellington Management, where he gained deep insights into the challenges faced by institutional investors in data management and reporting. " +
				"His leadership combines technical expertise with strategic vision, driving the company's mission to transform how financial data is processed and utilized by institutional investors across Japan and beyond.",
			Category:      "leadership",
			ImagePath:     "images/leadership_team.png",
			RelatedTopics: []string{"ceo", "experience", "background"},
			Keywords:      []string{"ceo", "leader", "founder", "executive", "management", "jeffrey", "tsui", "who"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "Who are some of Visual Alpha's clients?",
			Answer: "Visual Alpha serves a prestigious portfolio of institutional clients, including leading asset managers and pension funds in Japan. " +
				"Our notable clients include Benesse Group Pension Fund, one of Japan's largest corporate pension funds; Sumitomo Mitsui DS Asset Management, a major asset management company; and Mercer Japan, a global leader in consulting services. " +
				"These relationships demonstrate our ability to deliver enterprise-grade solutions that meet the stringent requirements of large-scale institutional investors, handling complex portfolio management, regulatory reporting, and data analytics needs.",
			Category:      "clients",
			ImagePath:     "images/client_logos.png",
			RelatedTopics: []string{"institutional_investors", "pension_funds", "asset_managers"},
			Keywords:      []string{"clients", "customers", "partners", "benesse", "sumitomo", "mercer", "who"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "What technologies does Visual Alpha use?",
			Answer: "Visual Alpha's technology stack is built on modern, scalable architecture designed for high-performance financial data processing. " +
				"Our backend infrastructure utilizes NodeJS for server-side development, ensuring fast and efficient data processing. " +
				"The frontend is built with React, providing responsive and intuitive user interfaces. " +
				"We use PHP with the Laravel framework for certain web applications, while our database layer is powered by MySQL for reliable data storage. " +
				"Our API architecture includes both GraphQL and RESTful APIs for flexible data access. " +
				"Cloud infrastructure is managed through AWS, providing scalability and security, while Docker containers ensure consistent deployment environments. " +
				"Our CI/CD pipeline is powered by CircleCI for automated testing and deployment.",
			Category:      "technology",
			ImagePath:     "images/tech_stack.png",
			RelatedTopics: []string{"nodejs", "react", "aws", "api"},
			Keywords:      []string{"technology", "tech", "stack", "tools", "nodejs", "react", "aws", "docker", "database"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "What are Visual Alpha's main services?",
			Answer: "Visual Alpha offers a comprehensive suite of financial technology services designed specifically for institutional investors. " +
				"Our core services include: 1) Unstructured Data Processing - transforming complex financial documents, reports, and data feeds into structured, actionable information; " +
				"2) Content Automation - generating automated reports, presentations, and analytical documents that save hours of manual work; " +
				"3) Performance Calculation - providing accurate, real-time portfolio performance metrics and attribution analysis; " +
				"4) Portfolio Monitoring - continuous tracking of investment positions, risk metrics, and compliance requirements. " +
				"All services are tailored for financial professionals managing large-scale institutional investments and integrate seamlessly with existing investment management workflows.",
			Category:      "services",
			ImagePath:     "images/services_overview.png",
			RelatedTopics: []string{"data_processing", "automation", "portfolio_management"},
			Keywords:      []string{"services", "offerings", "products", "solutions", "features", "capabilities"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "How do I delete a mandate?",
			Answer: "First of all, you will need admin access to delete a mandate. " +
				"From the application navbar, click on Clients → then click on the client from which you want to delete the mandate → " +
				"you will be redirected to the client's Mandate Summary page where you can see all the listed mandates associated with that client → " +
				"then click on the mandate you want to delete → you will be redirected to the Mandate Details page → " +
				"then click on '...' on the top right corner → from the list that opens, click on 'Delete mandate'.",
			Category:      "mandate_management",
			ImagePath:     "images/delete_mandate.png",
			RelatedTopics: []string{"mandate", "delete", "admin", "client management"},
			Keywords:      []string{"delete", "mandate", "remove", "how", "admin", "client"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "What are the steps to remove a mandate from a client?",
			Answer: "To remove a mandate, you must have admin access. " +
				"Navigate to Clients from the navbar, select the specific client, view their Mandate Summary page showing all mandates, " +
				"click on the target mandate to open Mandate Details, then click the '...' menu in the top right corner and select 'Delete mandate' from the dropdown options.",
			Category:      "mandate_management",
			ImagePath:     "images/delete_mandate.png",
			RelatedTopics: []string{"mandate", "delete", "admin", "client management"},
			Keywords:      []string{"remove", "mandate", "delete", "steps", "client", "admin"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "How can I delete a mandate in Visual Alpha?",
			Answer: "Deleting a mandate requires admin access. " +
				"From the application navbar, click on Clients, then select the client whose mandate you want to delete. " +
				"On the client's Mandate Summary page, you'll see all associated mandates. " +
				"Click on the mandate you wish to delete to open its Mandate Details page. " +
				"Then click on the '...' menu button on the top right corner and select 'Delete mandate' from the options.",
			Category:      "mandate_management",
			ImagePath:     "images/delete_mandate.png",
			RelatedTopics: []string{"mandate", "delete", "admin", "client management"},
			Keywords:      []string{"delete", "mandate", "visual alpha", "how", "admin"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "What permissions do I need to delete a mandate?",
			Answer: "You need admin access to delete a mandate. " +
				"Once you have admin permissions, navigate to Clients → select the client → view the Mandate Summary page → " +
				"click on the specific mandate → open the Mandate Details page → click '...' in the top right corner → select 'Delete mandate' from the dropdown menu.",
			Category:      "mandate_management",
			ImagePath:     "images/delete_mandate.png",
			RelatedTopics: []string{"mandate", "delete", "admin", "permissions"},
			Keywords:      []string{"permissions", "admin", "delete", "mandate", "access"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "Can I remove a mandate without admin access?",
			Answer: "No, you cannot delete a mandate without admin access. " +
				"Admin access is required to perform mandate deletion. " +
				"If you have admin access, follow these steps: From the navbar, click Clients → select the client → go to Mandate Summary page → " +
				"click the mandate to delete → open Mandate Details → click '...' on the top right → select 'Delete mandate'.",
			Category:      "mandate_management",
			ImagePath:     "images/delete_mandate.png",
			RelatedTopics: []string{"mandate", "delete", "admin", "permissions"},
			Keywords:      []string{"admin", "access", "remove", "mandate", "permissions", "without"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "How do I add a new client in Visual Alpha?",
			Answer: "To add a new client, you need admin access. " +
				"From the navbar, click on Clients → then click 'Add Client' → fill in the client details such as name, contact information, and relevant documents → " +
				"click 'Save' to register the client in the system.",
			Category:      "client_management",
			ImagePath:     "images/add_client.png",
			RelatedTopics: []string{"clients", "admin", "add", "registration"},
			Keywords:      []string{"add", "client", "register", "new", "how", "create"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "How do I update client information?",
			Answer: "Navigate to Clients from the navbar → select the client you want to update → open the Client Details page → " +
				"click 'Edit' → update the necessary information → click 'Save' to apply the changes.",
			Category:      "client_management",
			ImagePath:     "images/edit_client.png",
			RelatedTopics: []string{"clients", "update", "edit"},
			Keywords:      []string{"update", "edit", "client", "information", "how", "change"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "How can I generate a report in Visual Alpha?",
			Answer: "Go to the Reports section in the application → select the type of report you need → choose the relevant client or portfolio → " +
				"apply any filters if necessary → click 'Generate' → the report will be displayed and can be exported as PDF or Excel.",
			Category:      "reporting",
			ImagePath:     "images/generate_report.png",
			RelatedTopics: []string{"reports", "export", "pdf", "excel"},
			Keywords:      []string{"generate", "report", "create", "export", "how", "view"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "How do I assign a mandate to a client?",
			Answer: "From the navbar, click Clients → select the client → navigate to the Mandate Summary page → click 'Add Mandate' → " +
				"fill in the mandate details including type, duration, and permissions → click 'Save' to assign the mandate.",
			Category:      "mandate_management",
			ImagePath:     "images/add_mandate.png",
			RelatedTopics: []string{"mandate", "client", "assign", "admin"},
			Keywords:      []string{"assign", "mandate", "client", "add", "how", "create"},
		},
		{
			Locale:   core.LocaleEnglish,
			Question: "How do I update my profile in Visual Alpha?",
			Answer: "Click on your profile icon in the top right corner → select 'Settings' → go to 'Profile' → " +
				"update your information such as name, email, and password → click 'Save' to apply the changes.",
			Category:      "user_management",
			ImagePath:     "images/update_profile.png",
			RelatedTopics: []string{"profile", "user", "settings", "update"},
			Keywords:      []string{"update", "profile", "settings", "user", "change", "how"},
		},
	}
}
