package topic

import "github.com/phrazzld/courseforge-api/internal/domain"

// Catalog returns the built-in topic definitions in display order.
// This is the only place to touch when adding or editing a topic.
func Catalog() []domain.Topic {
	return []domain.Topic{
		{
			ID:            "business_communication",
			Title:         "Business Communication",
			Description:   "Professional workplace conversations, meetings, and announcements.",
			Icon:          "briefcase",
			Temperature:   0.7,
			EstimatedTime: "15-20 min",
			PromptTemplate: "Create an English course exercise about professional business communication. " +
				"Cover workplace conversations, meeting phrases, and polite disagreement at an intermediate level.",
		},
		{
			ID:            "email_etiquette",
			Title:         "Email Etiquette",
			Description:   "Writing clear, polite, and effective professional emails.",
			Icon:          "mail",
			Temperature:   0.6,
			EstimatedTime: "10-15 min",
			PromptTemplate: "Create an English course exercise about professional email writing. " +
				"Focus on greetings, subject lines, tone, and common email phrases.",
		},
		{
			ID:            "presentation_skills",
			Title:         "Presentation Skills",
			Description:   "Structuring and delivering presentations with confidence.",
			Icon:          "projector",
			Temperature:   0.7,
			EstimatedTime: "20-25 min",
			PromptTemplate: "Create an English course exercise about giving presentations. " +
				"Include signposting language, describing charts, and handling audience questions.",
		},
		{
			ID:            "job_interviews",
			Title:         "Job Interviews",
			Description:   "Answering common interview questions and talking about experience.",
			Icon:          "user-check",
			Temperature:   0.65,
			EstimatedTime: "15-20 min",
			PromptTemplate: "Create an English course exercise about job interviews. " +
				"Cover answering behavioral questions, describing strengths, and asking the interviewer questions.",
		},
		{
			ID:            "negotiation_basics",
			Title:         "Negotiation Basics",
			Description:   "Making offers, compromising, and reaching agreement.",
			Icon:          "handshake",
			Temperature:   0.75,
			EstimatedTime: "20-25 min",
			PromptTemplate: "Create an English course exercise about business negotiation. " +
				"Include making proposals, conditional offers, and diplomatic refusals.",
		},
		{
			ID:            "small_talk",
			Title:         "Small Talk & Networking",
			Description:   "Starting conversations and building rapport at work events.",
			Icon:          "message-circle",
			Temperature:   0.8,
			EstimatedTime: "10-15 min",
			PromptTemplate: "Create an English course exercise about small talk and networking. " +
				"Cover conversation openers, safe topics, and polite ways to end a conversation.",
		},
		{
			ID:            "customer_service",
			Title:         "Customer Service",
			Description:   "Handling requests, complaints, and difficult customers politely.",
			Icon:          "headphones",
			Temperature:   0.6,
			EstimatedTime: "15-20 min",
			PromptTemplate: "Create an English course exercise about customer service English. " +
				"Focus on apologizing, offering solutions, and de-escalation phrases.",
		},
		{
			ID:            "report_writing",
			Title:         "Report Writing",
			Description:   "Summarizing findings and recommendations in written reports.",
			Icon:          "file-text",
			Temperature:   0.55,
			EstimatedTime: "20-25 min",
			PromptTemplate: "Create an English course exercise about business report writing. " +
				"Include linking words, summarizing data, and formal written style.",
		},
	}
}
