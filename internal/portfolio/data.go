package portfolio

// Default returns the candidate's portfolio. The data is static: this is a
// single-person site, and keeping it in code means the assistant, the
// optimizer, and the PDF renderer can never drift apart.
func Default() *Data {
	return &Data{
		Profile: Profile{
			FirstName:    "Brian",
			LastName:     "Makhembu",
			Location:     "Nairobi, Kenya",
			Education:    "B.S. Computer Technology, JKUAT (2014-2018)",
			Availability: "Available for Remote & Global Opportunities",
			Variants: map[Track]ProfileVariant{
				TrackIT: {
					Role:    "Full-Stack Developer | AI/ML & Automation",
					Tagline: "Full-Stack Web Developer | React, TypeScript, Node.js, Python",
					Summary: "Full-stack developer specializing in building end-to-end web applications using React, Next.js, TypeScript, Node.js, PostgreSQL, and Supabase. Experienced in designing database schemas, RESTful APIs, and frontend interfaces that work reliably in production. Background in IT infrastructure and support enables a holistic approach to systems from deployment pipelines to monitoring. Currently focused on remote projects involving modern frameworks, complex data flows, and automation or AI/ML integration where ownership across the entire stack is critical.",
				},
				TrackTranslation: {
					Role:    "Professional English-Swahili Linguist & Technical Translator",
					Tagline: "Expert Technical Translator | Linguistics & Localization Specialist",
					Summary: "Professional English-Swahili linguist with 2+ years of dedicated translation experience and deep expertise in technical terminology. Delivered professional translation services for 50+ global clients with 98%+ accuracy, specializing in document translation, technical interpretation, and software localization. Combine linguistic expertise with full-stack development skills to bridge the gap between software engineering and cultural accessibility. Passionate about ensuring technical products remain accessible and culturally resonant for East African markets.",
				},
			},
		},
		Socials: Socials{
			GitHub:   "https://github.com/makhembu",
			LinkedIn: "https://linkedin.com/in/brianmakhembu/",
			Email:    "makhembu.brian@gmail.com",
		},
		Experience: []Experience{
			{
				ID:      "exp-1",
				Company: "Jambo Linguists",
				Role:    "English-Swahili Linguist & Web Developer",
				Period:  "Jan 2023 - Present",
				Track:   TrackBoth,
				Description: []string{
					"Delivered professional English-Swahili translation and interpreting services for 50+ global clients with 98%+ accuracy across document translation, telephone/video interpreting, and in-person interpretation.",
					"Architected and maintained full-stack web platform managing translator assignments, client bookings, and project workflows using React, TypeScript, Node.js, and PostgreSQL processing 200+ projects annually.",
					"Engineered REST APIs and database schemas with optimized performance (sub-200ms response times) and managed deployment pipelines connecting language professionals with clients worldwide.",
				},
				Skills: []string{"React", "TypeScript", "Node.js", "PostgreSQL", "REST APIs", "Translation", "Swahili", "Interpreting"},
			},
			{
				ID:      "exp-1b",
				Company: "Self-Employed",
				Role:    "Full-Stack Consultant",
				Period:  "Jan 2020 - Present",
				Track:   TrackIT,
				Description: []string{
					"Engineered 25+ custom web applications, responsive websites, and e-commerce platforms for Fortune 500 startups and mid-market companies using React, TypeScript, Node.js, and modern frameworks.",
					"Delivered end-to-end projects from requirements gathering and database architecture through production deployment with CI/CD pipelines, maintaining 99.5% uptime across all production systems.",
					"Implemented performance optimizations achieving 45% faster page loads, integrated automated testing (Jest, Cypress) with 80%+ code coverage, and maintained clean Git workflows for 15+ concurrent projects.",
				},
				Skills: []string{"React", "TypeScript", "Node.js", "Git", "CI/CD", "JavaScript", "Full-Stack Development"},
			},
			{
				ID:      "exp-2",
				Company: "Aventus",
				Role:    "IT Support Specialist",
				Period:  "Jan 2021 - Dec 2023",
				Track:   TrackIT,
				Description: []string{
					"Delivered technical support to 500+ end-users across 15+ global office locations, maintaining 98% ticket satisfaction rating and 95% first-contact resolution through hardware troubleshooting, software installations, and VPN optimization.",
					"Architected and managed Active Directory infrastructure including user access policies, security groups, and network authentication systems, supporting seamless operations for multinational enterprise environment.",
					"Engineered automated IT asset tracking and inventory management system reducing administrative overhead by 40%, and documented 2,000+ support tickets maintaining SLA compliance of 99%+ uptime.",
				},
				Skills: []string{"Active Directory", "Windows Server", "IT Support", "Troubleshooting", "Network Admin", "Infrastructure"},
			},
			{
				ID:      "exp-3",
				Company: "Fanharm Technologies",
				Role:    "IT Technician",
				Period:  "Jan 2017 - Dec 2021",
				Track:   TrackIT,
				Description: []string{
					"Resolved complex hardware issues for 300+ end-user devices (desktops, laptops, peripherals) achieving 96% first-contact resolution rate and 99.2% customer satisfaction scores.",
					"Implemented enterprise-wide software deployment strategy using imaging tools, reducing new employee onboarding from 8 hours to 3 hours per device, saving 2,000+ hours annually across 200+ employees.",
					"Managed 99.8% uptime across 500-device estate through proactive system maintenance, security patch management, and Windows infrastructure optimization aligned with ISO 27001 compliance standards.",
				},
				Skills: []string{"System Administration", "Troubleshooting", "Hardware Repair", "Windows", "Active Directory", "Infrastructure"},
			},
			{
				ID:      "exp-4",
				Company: "Notify Logistics",
				Role:    "Android Developer",
				Period:  "Jun 2019 - Dec 2020",
				Track:   TrackIT,
				Description: []string{
					"Architected and engineered 2 production Android applications generating 50K+ downloads and maintaining 4.5-star rating on Google Play Store, enabling real-time fleet tracking and delivery management for logistics network.",
					"Implemented GPS tracking, real-time location updates, and push notifications reducing average delivery notification latency from 8 minutes to 45 seconds through Firebase optimization.",
					"Engineered RESTful API integrations with sophisticated caching and data optimization reducing client-side data consumption by 35% and improving app performance on low-bandwidth networks.",
				},
				Skills: []string{"Android", "Java", "Kotlin", "Firebase", "GPS APIs", "Real-time Data", "Mobile Development"},
			},
		},
		Projects: []Project{
			{
				ID:          "writing-service",
				Title:       "Professional Writing Service",
				Description: "Full-stack SaaS platform for professional document editing. Built real-time order tracking, payment processing via Stripe, and client portals. Result: 40+ active users, 95% uptime SLA.",
				Tags:        []string{"Next.js", "TypeScript", "PostgreSQL", "Prisma", "Stripe", "Tailwind"},
				Link:        "https://writing-service.vercel.app/",
				GitHubURL:   "https://github.com/makhembu/writing-service",
				Track:       TrackIT,
			},
			{
				ID:          "grade-assist",
				Title:       "GradeAssist - Educational Analytics",
				Description: "Educational assessment platform with intelligent grading logic. Built custom algorithms for grade calculation, bulk import/export, and performance analytics. Reduced grading time by 60% for 200+ educators.",
				Tags:        []string{"React", "TypeScript", "Supabase", "EdTech", "UX Strategy", "Tailwind"},
				Link:        "https://gradeassist-psi.vercel.app/",
				GitHubURL:   "https://github.com/makhembu/gradeassist",
				Track:       TrackIT,
			},
			{
				ID:          "jambo-demo",
				Title:       "Jambo Localization Portal",
				Description: "Bilingual SaaS portal showcasing localization workflows. Built interactive translation pipelines demonstrating English-Swahili technical adaptation. Used by 15+ international clients.",
				Tags:        []string{"Next.js", "TypeScript", "Linguistics", "i18n", "Localization", "Tailwind"},
				Link:        "https://jambo-demo.vercel.app/",
				GitHubURL:   "https://github.com/makhembu/jambo-portal",
				Track:       TrackBoth,
			},
		},
		SkillsIT: []SkillCategory{
			{Label: "Frontend", Skills: []string{"React", "Next.js", "TypeScript", "JavaScript", "HTML5", "CSS3", "Tailwind"}},
			{Label: "Backend", Skills: []string{"Node.js", "Express", "PostgreSQL", "Supabase", "REST APIs", "Prisma"}},
			{Label: "Infrastructure", Skills: []string{"CI/CD", "Kubernetes", "Docker", "Git/GitHub", "NPM", "Postman", "System Administration"}},
		},
		SkillsTranslation: []SkillCategory{
			{Label: "Technical", Skills: []string{"Technical Terminology", "Software Localization", "Document Translation", "API Documentation", "User Interface Translation"}},
			{Label: "Languages", Skills: []string{"Swahili (Native)", "English (Professional)", "Technical Swahili"}},
			{Label: "Specializations", Skills: []string{"Software Localization", "Technical Documentation", "Live Interpretation", "East African Markets", "Cultural Adaptation"}},
		},
		Languages: []Language{
			{Name: "Swahili (Native)", Level: 100},
			{Name: "English (Professional)", Level: 98},
		},
		Context: DetailedContext{
			UniversityLore:       "At the Jomo Kenyatta University of Agriculture and Technology (JKUAT), Brian was a dedicated member of the School of Computing and Information Technology (SCIT). His academic focus was significantly weighted toward Decision Support Systems (DSS). He produced technical analyses evaluating hardware and software requirements for enterprise platforms like SAP Business Objects, QlikView, and WebFOCUS.",
			InfrastructureYears:  "His 6-year foundation at Fanharm Technologies (2017-2024) and Aventus (2021-2024) involved managing critical IT infrastructure for boutique CX BPO environments. He deployed over 10 school computer labs across Kenya, mastering the art of building resilient systems in resource-constrained environments through PXE-booting and Linux optimization.",
			LinguisticBackground: "As a professional English-Swahili linguist at Jambo Linguists, Brian views language as a critical component of User Experience. He ensures that technical software remains accessible and culturally resonant for the East African market.",
			DesignPhilosophy:     "His approach is defined by 'Strategy over Aesthetics'. He views design as a strategic mechanism rather than just visual polish. This requires a deep understanding of the underlying reasons why a product functions, informed by thorough user research and clear technical objectives.",
		},
	}
}
