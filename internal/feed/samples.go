package feed

import "sarkari-engine/internal/domain"

// SampleJobs is the hard-coded fallback collection: one representative
// posting per known category, with the optional fields deliberately uneven so
// every rendering fallback stays exercised even offline.
func SampleJobs() []domain.JobRecord {
	return []domain.JobRecord{
		{
			ID:          "a1f3c20e9b7d4d51",
			Title:       "SBI Probationary Officer Recruitment 2025",
			Source:      "sarkariresult.com",
			Category:    "Banking",
			Description: "State Bank of India invites online applications for Probationary Officer posts across all circles. Graduates in any discipline may apply.",
			URL:         "https://sbi.co.in/careers/po-2025",
			ImportantDates: &domain.ImportantDates{
				LastDate: "21-09-2025",
				ExamDate: "08-11-2025",
			},
			Skills: []string{"Quantitative Aptitude", "Reasoning", "English"},
		},
		{
			ID:          "b2e4d31fa8c6e062",
			Title:       "SSC CGL 2025 Notification - Combined Graduate Level",
			Source:      "freejobalert.com",
			Category:    "SSC",
			Description: "Staff Selection Commission Combined Graduate Level examination for Group B and Group C posts in ministries and departments.",
			URL:         "https://ssc.nic.in/cgl-2025",
			PDFLink:     "https://ssc.nic.in/notices/cgl-2025.pdf",
			ImportantDates: &domain.ImportantDates{
				LastDate: "04-10-2025",
			},
			Skills: []string{"General Knowledge", "Quantitative Aptitude", "English"},
		},
		{
			ID:          "c3f5e42ab9d7f173",
			Title:       "RRB NTPC Graduate Posts Recruitment",
			Source:      "sarkariexam.com",
			Category:    "Railway",
			Description: "Railway Recruitment Board invites applications for Non-Technical Popular Categories posts including station master and goods guard.",
			URL:         "https://rrbapply.gov.in/ntpc",
			ImportantDates: &domain.ImportantDates{
				LastDate: "15-10-2025",
			},
			Skills: []string{"General Knowledge", "Reasoning", "Current Affairs"},
		},
		{
			ID:          "d4a6f53bc0e80284",
			Title:       "UP Police Constable Recruitment 2025",
			Source:      "rojgarresult.com",
			Category:    "Police",
			Description: "Uttar Pradesh Police Recruitment and Promotion Board announces direct recruitment of constables in civil police.",
			URL:         "https://uppbpb.gov.in/constable-2025",
			Skills:      []string{"General Knowledge", "Reasoning", "Hindi"},
		},
		{
			ID:          "e5b7a64cd1f91395",
			Title:       "Indian Army Agniveer Rally 2025",
			Source:      "joinindianarmy.nic.in",
			Category:    "Defence",
			Description: "Indian Army Agniveer recruitment rally for General Duty, Technical, and Tradesman entries. Online registration mandatory.",
			URL:         "https://joinindianarmy.nic.in/agniveer",
			ImportantDates: &domain.ImportantDates{
				LastDate: "30-09-2025",
			},
		},
		{
			ID:          "f6c8b75de2a024a6",
			Title:       "KVS Primary Teacher (PRT) Recruitment",
			Source:      "jagranjosh.com",
			Category:    "Teaching",
			Description: "Kendriya Vidyalaya Sangathan recruitment for Primary Teacher posts. CTET qualification required.",
			URL:         "https://kvsangathan.nic.in/prt-2025",
			ImportantDates: &domain.ImportantDates{
				LastDate: "12-10-2025",
				ExamDate: "14-12-2025",
			},
			Skills: []string{"Teaching", "Communication Skills"},
		},
		{
			ID:          "07d9c86ef3b135b7",
			Title:       "UPSC Civil Services Examination 2026",
			Source:      "upsc.gov.in",
			Category:    "UPSC",
			Description: "Union Public Service Commission Civil Services Examination for IAS, IPS, IFS and allied services. Preliminary examination in May.",
			URL:         "https://upsc.gov.in/cse-2026",
			PDFLink:     "https://upsc.gov.in/notices/cse-2026.pdf",
			ImportantDates: &domain.ImportantDates{
				LastDate: "17-02-2026",
				ExamDate: "24-05-2026",
			},
			Skills: []string{"Current Affairs", "General Knowledge", "Analytical Thinking"},
		},
		{
			ID:          "18ead97fa4c246c8",
			Title:       "AIIMS Nursing Officer Recruitment Common Eligibility Test",
			Source:      "aiimsexams.ac.in",
			Category:    "Medical",
			Description: "All India Institute of Medical Sciences common eligibility test for Nursing Officer posts across AIIMS institutions.",
			URL:         "https://aiimsexams.ac.in/norcet",
			ImportantDates: &domain.ImportantDates{
				LastDate: "25-09-2025",
			},
			Skills: []string{"Nursing", "Patient Care"},
		},
		{
			ID:          "29fbea80b5d357d9",
			Title:       "SSC Junior Engineer (Civil/Electrical/Mechanical) 2025",
			Source:      "freejobalert.com",
			Category:    "Engineering",
			Description: "Staff Selection Commission Junior Engineer examination for civil, electrical and mechanical engineering posts in central departments.",
			URL:         "https://ssc.nic.in/je-2025",
			Skills:      []string{"Engineering", "Technical"},
		},
		{
			ID:          "3a0cfb91c6e468ea",
			Title:       "NIC Scientist-B and Scientific Officer Recruitment",
			Source:      "ncs.gov.in",
			Category:    "IT",
			Description: "National Informatics Centre recruitment of Scientist-B and Scientific/Technical Assistant posts through NIELIT.",
			URL:         "https://calicut.nielit.in/nic-2025",
			ImportantDates: &domain.ImportantDates{
				LastDate: "10-10-2025",
			},
			Skills: []string{"Python", "Java", "SQL", "Computer Knowledge"},
		},
		{
			ID:          "4b1d0aa2d7f579fb",
			Title:       "RBI Grade B Officer Recruitment 2025",
			Source:      "rbi.org.in",
			Category:    "Finance",
			Description: "Reserve Bank of India direct recruitment of officers in Grade B (General, DEPR, DSIM streams).",
			URL:         "https://rbi.org.in/gradeB-2025",
			ImportantDates: &domain.ImportantDates{
				LastDate: "16 October 2025",
			},
			Skills: []string{"Finance", "Economics", "English"},
		},
		{
			ID:          "5c2e1bb3e8068a0c",
			Title:       "High Court Law Clerk-cum-Research Assistant",
			Source:      "sarkari-naukri.info",
			Category:    "Legal",
			Description: "Delhi High Court engagement of law clerks-cum-research assistants for the term 2025-26. Law graduates eligible.",
			URL:         "https://delhihighcourt.nic.in/law-clerk-2025",
			Skills:      []string{"Legal", "Research"},
		},
		{
			ID:          "6d3f2cc4f9179b1d",
			Title:       "IRCTC Relationship Manager (E-Catering) Posts",
			Source:      "timesjobs.com",
			Category:    "Sales",
			Description: "Indian Railway Catering and Tourism Corporation engagement of relationship managers for the e-catering vertical on contract basis.",
			URL:         "https://irctc.com/careers/rm-2025",
			Skills:      []string{"Sales", "Relationship Manager", "Communication"},
		},
		{
			ID:          "7e403dd50a28ac2e",
			Title:       "SAIL HR Executive Recruitment through UGC-NET",
			Source:      "shine.com",
			Category:    "HR",
			Description: "Steel Authority of India Limited recruitment of HR executives using UGC-NET scores. Postgraduates in HR/IR eligible.",
			URL:         "https://sail.co.in/hr-2025",
			ImportantDates: &domain.ImportantDates{
				LastDate: "28/09/2025",
			},
			Skills: []string{"HR", "Recruitment"},
		},
		{
			ID:          "8f514ee61b39bd3f",
			Title:       "India Post GDS and Postal Assistant Recruitment",
			Source:      "indiapost.gov.in",
			Category:    "Administrative",
			Description: "Department of Posts recruitment of Gramin Dak Sevaks and postal assistants. Selection on merit of matriculation marks.",
			URL:         "https://indiapostgdsonline.gov.in",
			ImportantDates: &domain.ImportantDates{
				LastDate: "05-10-2025",
			},
			Skills: []string{"Typing", "Computer Knowledge"},
		},
		{
			ID:          "9a625ff72c4ace40",
			Title:       "District Court Group D Multi Tasking Staff Posts",
			Source:      "govtjobsportal.in",
			Category:    "General",
			Description: "District and Sessions Court recruitment of multi tasking staff. Tenth pass candidates may apply offline or online.",
			URL:         "https://districts.ecourts.gov.in/mts-2025",
		},
	}
}
