package catalog

func defaultCharacters() map[string]Character {
	return map[string]Character{
		"carmen": {
			Name:        "Carmen Rodriguez",
			Personality: "empathetic HR leader who blends people-first instincts with data fluency",
			Tone:        "warm, encouraging, practical",
			Expertise:   "talent acquisition, performance management, employee engagement",
			Model:       "gpt-4o-mini",
		},
		"default": {
			Name:        "Workshop Guide",
			Personality: "pragmatic facilitator focused on concrete next steps",
			Tone:        "clear, neutral",
			Expertise:   "organizational strategy",
			Model:       "gpt-4o-mini",
		},
	}
}

func builtinWorkshops() []Workshop {
	return []Workshop{
		talentAcquisitionWorkshop(),
		performanceInsightsWorkshop(),
		engagementBuilderWorkshop(),
	}
}

func talentAcquisitionWorkshop() Workshop {
	return Workshop{
		ID:          "carmen-talent-acquisition",
		Title:       "Compassionate Talent Acquisition",
		Slug:        "talent-acquisition",
		Character:   "carmen",
		ContentType: "compassionate-hiring-strategy",
		Topic:       "AI-powered talent acquisition with human empathy",
		Categories: []Category{
			{
				ID:            "roles",
				Label:         "Hiring for",
				Kind:          KindMultiChoice,
				MaxSelections: 2,
				Required:      true,
				Options: []OptionItem{
					{ID: "program-manager", Label: "Program Manager", Description: "Cross-functional project leadership"},
					{ID: "software-engineer", Label: "Software Engineer", Description: "Technical development roles"},
					{ID: "marketing-coordinator", Label: "Marketing Coordinator", Description: "Brand and campaign management"},
					{ID: "data-analyst", Label: "Data Analyst", Description: "Analytics and insights roles"},
					{ID: "communications-manager", Label: "Communications Manager", Description: "Internal and external communications"},
					{ID: "operations-specialist", Label: "Operations Specialist", Description: "Process and efficiency optimization"},
					{ID: "customer-success", Label: "Customer Success", Description: "Client relationship management"},
					{ID: "product-manager", Label: "Product Manager", Description: "Product strategy and delivery"},
				},
			},
			{
				ID:            "challenges",
				Label:         "Challenges",
				Kind:          KindMultiChoice,
				MaxSelections: 3,
				Required:      true,
				Options: []OptionItem{
					{ID: "long-time-to-hire", Label: "Long Time to Hire", Description: "Recruitment process takes too long"},
					{ID: "poor-candidate-quality", Label: "Poor Candidate Quality", Description: "Applicants don't meet requirements"},
					{ID: "lack-diversity", Label: "Lack of Diversity", Description: "Not reaching diverse talent pools"},
					{ID: "high-rejection-rate", Label: "High Offer Rejection Rate", Description: "Candidates decline job offers"},
					{ID: "bias-in-process", Label: "Unconscious Bias", Description: "Unfair evaluation practices"},
					{ID: "poor-candidate-experience", Label: "Poor Candidate Experience", Description: "Negative feedback about process"},
				},
			},
			{
				ID:            "strategies",
				Label:         "Strategies",
				Kind:          KindMultiChoice,
				MaxSelections: 3,
				Options: []OptionItem{
					{ID: "inclusive-job-descriptions", Label: "Inclusive Job Descriptions", Description: "Bias-free, welcoming language"},
					{ID: "structured-interviews", Label: "Structured Interviews", Description: "Consistent evaluation framework"},
					{ID: "diverse-sourcing", Label: "Diverse Sourcing Channels", Description: "Reach underrepresented groups"},
					{ID: "skills-assessments", Label: "Skills-Based Assessments", Description: "Objective capability evaluation"},
					{ID: "cultural-fit-interviews", Label: "Culture Fit Evaluation", Description: "Values alignment assessment"},
					{ID: "employer-branding", Label: "Strong Employer Branding", Description: "Attractive company reputation"},
				},
			},
			{
				ID:            "goals",
				Label:         "Goals",
				Kind:          KindMultiChoice,
				MaxSelections: 2,
				Required:      true,
				Options: []OptionItem{
					{ID: "faster-hiring", Label: "Faster Hiring Process", Description: "Reduce time-to-hire significantly"},
					{ID: "better-quality", Label: "Higher Quality Candidates", Description: "Find better-qualified applicants"},
					{ID: "improve-diversity", Label: "Increase Diversity", Description: "Build more inclusive teams"},
					{ID: "reduce-bias", Label: "Eliminate Bias", Description: "Fair and objective evaluations"},
					{ID: "better-experience", Label: "Improve Candidate Experience", Description: "Positive recruitment journey"},
					{ID: "higher-retention", Label: "Better New Hire Retention", Description: "Find people who stay longer"},
				},
			},
			{
				ID:    "notes",
				Label: "Additional Context",
				Kind:  KindFreeText,
			},
		},
		Segments: []SegmentSpec{
			{
				ID:       "context",
				Label:    "Carmen's Approach",
				Type:     SegmentContext,
				ColorTag: "purple",
				Required: true,
				Static:   "Carmen creates compassionate hiring strategies combining AI efficiency with human empathy.",
			},
			{ID: "roles", Label: "Role Types", Type: SegmentData, ColorTag: "blue", Categories: []string{"roles"}},
			{ID: "challenges", Label: "Challenges", Type: SegmentData, ColorTag: "red", Categories: []string{"challenges"}},
			{ID: "strategies", Label: "Strategies", Type: SegmentInstruction, ColorTag: "green", Categories: []string{"strategies"}},
			{ID: "goals", Label: "Goals", Type: SegmentInstruction, ColorTag: "purple", Categories: []string{"goals", "notes"}},
			{
				ID:       "format",
				Label:    "Output Format",
				Type:     SegmentFormat,
				ColorTag: "gray",
				Required: true,
				Static: "Create a structured hiring strategy following Carmen's framework: " +
					"1) Inclusive Job Descriptions, 2) Bias-Free Screening, 3) Empathetic Interviews, " +
					"4) Holistic Evaluation, 5) Exceptional Candidate Experience. " +
					"Include specific action steps and implementation guidance.",
			},
		},
	}
}

func performanceInsightsWorkshop() Workshop {
	return Workshop{
		ID:          "carmen-performance-insights",
		Title:       "Performance Insights Workshop",
		Slug:        "performance-insights",
		Character:   "carmen",
		ContentType: "performance-strategy-document",
		Topic:       "AI-powered performance management with empathy and data",
		Categories: []Category{
			{
				ID:       "team-size",
				Label:    "Team size",
				Kind:     KindSingleChoice,
				Required: true,
				Options: []OptionItem{
					{ID: "small-team", Label: "Small Team (2-10 people)", Description: "Tight-knit group with close collaboration"},
					{ID: "medium-team", Label: "Medium Team (11-25 people)", Description: "Growing team with developing processes"},
					{ID: "large-team", Label: "Large Team (26-50 people)", Description: "Established team needing structured approaches"},
					{ID: "department", Label: "Department (51+ people)", Description: "Large organization requiring systematic frameworks"},
				},
			},
			{
				ID:            "challenges",
				Label:         "Performance challenges",
				Kind:          KindMultiChoice,
				MaxSelections: 3,
				Required:      true,
				Options: []OptionItem{
					{ID: "unclear-expectations", Label: "Unclear Performance Expectations", Description: "Team members don't know what success looks like"},
					{ID: "biased-evaluations", Label: "Biased or Unfair Evaluations", Description: "Concerns about objectivity in assessments"},
					{ID: "difficult-conversations", Label: "Difficult Performance Conversations", Description: "Struggling to deliver feedback effectively"},
					{ID: "lack-feedback", Label: "Infrequent Feedback Cycles", Description: "Too much time between meaningful check-ins"},
					{ID: "no-development", Label: "Limited Development Planning", Description: "No clear growth pathways for team members"},
					{ID: "no-recognition", Label: "Insufficient Recognition", Description: "Good performance goes unnoticed"},
				},
			},
			{
				ID:       "desired-outcome",
				Label:    "Dream outcome",
				Kind:     KindSingleChoice,
				Required: true,
				Options: []OptionItem{
					{ID: "increase-satisfaction", Label: "Team Members Love Their Work", Description: "High engagement and job satisfaction"},
					{ID: "improve-retention", Label: "People Want to Stay and Grow", Description: "Strong retention and internal development"},
					{ID: "enhance-development", Label: "Clear Career Pathways", Description: "Everyone has a growth plan they're excited about"},
					{ID: "boost-productivity", Label: "Higher Performance Outcomes", Description: "Better results through better support"},
				},
			},
			{
				ID:            "success-metrics",
				Label:         "Success metrics",
				Kind:          KindMultiChoice,
				MaxSelections: 3,
				Options: []OptionItem{
					{ID: "goal-achievement", Label: "Goal Achievement Rate", Description: "Higher percentage of objectives being met"},
					{ID: "employee-satisfaction", Label: "Employee Satisfaction Scores", Description: "Better pulse survey results"},
					{ID: "retention-rate", Label: "Team Retention Rate", Description: "People choosing to stay and grow here"},
					{ID: "feedback-frequency", Label: "Regular Feedback Cadence", Description: "Consistent, meaningful check-ins happening"},
				},
			},
		},
		Segments: []SegmentSpec{
			{
				ID:       "context",
				Label:    "Carmen's Context",
				Type:     SegmentContext,
				ColorTag: "purple",
				Required: true,
				Static: "Carmen Rodriguez needs to create performance insights using her empathetic, " +
					"data-driven approach that combines objective analysis with meaningful human development conversations.",
			},
			{ID: "team-data", Label: "Team Information", Type: SegmentData, ColorTag: "blue", Categories: []string{"team-size"}},
			{ID: "challenges", Label: "Performance Challenges", Type: SegmentData, ColorTag: "red", Categories: []string{"challenges"}},
			{ID: "goals", Label: "Improvement Goals", Type: SegmentInstruction, ColorTag: "green", Categories: []string{"desired-outcome"}},
			{ID: "metrics", Label: "Key Metrics to Track", Type: SegmentInstruction, ColorTag: "purple", Categories: []string{"success-metrics"}},
			{
				ID:       "format",
				Label:    "Output Format",
				Type:     SegmentFormat,
				ColorTag: "gray",
				Required: true,
				Static: "Create a comprehensive performance management framework with: " +
					"1) Data-driven analysis approach, 2) Empathetic conversation techniques, " +
					"3) Growth-focused development plans, 4) Bias-free evaluation methods, " +
					"5) Recognition and feedback systems. Include specific action steps and implementation guidance.",
			},
		},
	}
}

func engagementBuilderWorkshop() Workshop {
	return Workshop{
		ID:          "carmen-engagement-builder",
		Title:       "Engagement Builder Lab",
		Slug:        "engagement-builder",
		Character:   "carmen",
		ContentType: "engagement-action-plan",
		Topic:       "Building sustained employee engagement with AI support",
		Categories: []Category{
			{
				ID:       "initiatives",
				Label:    "Engagement initiatives",
				Kind:     KindRanking,
				Required: true,
				TopK:     3,
				Options: []OptionItem{
					{
						ID: "recognition-program", Label: "Peer Recognition Program",
						Description: "Lightweight peer-to-peer recognition with visible wins",
						Meta: &CardMeta{Impact: LevelHigh, Effort: LevelLow, Urgency: LevelMedium, Risk: LevelLow, EstimatedTime: 8, Tags: []string{"recognition", "culture"}, Category: "recognition"},
					},
					{
						ID: "career-conversations", Label: "Quarterly Career Conversations",
						Description: "Structured growth conversations separate from reviews",
						Meta: &CardMeta{Impact: LevelHigh, Effort: LevelMedium, Urgency: LevelHigh, Risk: LevelLow, EstimatedTime: 16, Tags: []string{"development", "feedback"}, Category: "development"},
					},
					{
						ID: "pulse-surveys", Label: "Monthly Pulse Surveys",
						Description: "Short anonymous surveys with shared follow-ups",
						Meta: &CardMeta{Impact: LevelMedium, Effort: LevelLow, Urgency: LevelMedium, Risk: LevelLow, EstimatedTime: 6, Tags: []string{"feedback", "data"}, Category: "feedback"},
					},
					{
						ID: "flexible-work", Label: "Flexible Work Agreements",
						Description: "Team-level norms for hours and location",
						Meta: &CardMeta{Impact: LevelHigh, Effort: LevelHigh, Urgency: LevelMedium, Risk: LevelMedium, EstimatedTime: 24, Tags: []string{"wellbeing", "policy"}, Category: "wellbeing"},
					},
					{
						ID: "team-rituals", Label: "Team Rituals Refresh",
						Description: "Redesign standing meetings and celebrations",
						Meta: &CardMeta{Impact: LevelMedium, Effort: LevelLow, Urgency: LevelLow, Risk: LevelLow, EstimatedTime: 10, Tags: []string{"culture", "connection"}, Category: "culture"},
					},
					{
						ID: "mentorship-pairs", Label: "Mentorship Pairing",
						Description: "Cross-team mentor matches with light structure",
						Meta: &CardMeta{Impact: LevelMedium, Effort: LevelMedium, Urgency: LevelLow, Risk: LevelLow, EstimatedTime: 20, Tags: []string{"development", "connection"}, Category: "development"},
					},
				},
			},
			{
				ID:    "team-energy",
				Label: "Current team energy",
				Kind:  KindScalar,
				Min:   1,
				Max:   10,
			},
			{
				ID:    "change-capacity",
				Label: "Capacity for change",
				Kind:  KindScalar,
				Min:   1,
				Max:   10,
			},
			{
				ID:    "notes",
				Label: "Team context",
				Kind:  KindFreeText,
			},
		},
		Segments: []SegmentSpec{
			{
				ID:       "context",
				Label:    "Carmen's Approach",
				Type:     SegmentContext,
				ColorTag: "purple",
				Required: true,
				Static: "Carmen designs engagement plans that pair AI-surfaced signals with genuinely human moments, " +
					"sequencing initiatives so teams feel progress without change fatigue.",
			},
			{ID: "priorities", Label: "Initiative Priorities", Type: SegmentData, ColorTag: "blue", Categories: []string{"initiatives"}},
			{ID: "team-state", Label: "Team State", Type: SegmentData, ColorTag: "red", Categories: []string{"team-energy", "change-capacity", "notes"}},
			{
				ID:       "format",
				Label:    "Output Format",
				Type:     SegmentFormat,
				ColorTag: "gray",
				Required: true,
				Static: "Create an engagement action plan with: 1) Sequenced initiative rollout matching the stated priorities, " +
					"2) Quick wins within the first month, 3) Communication and feedback loops, " +
					"4) Signals to watch for change fatigue. Include concrete owner-ready action steps.",
			},
		},
	}
}
