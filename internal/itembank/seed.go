package itembank

// Built-in Big Five item pool. Discriminations and difficulties come from a
// pilot calibration; they are deliberately spread across the theta range so
// the selector has an informative item near any running estimate.
//
// The consistency_check items are never administered by the engine itself.
// They are reserved for the dialogue layer that drives the conversation,
// which cross-checks them against earlier responses; the bank carries them
// so that layer reads from the same pool.

func fp(v float64) *float64 { return &v }

func seedDimensions() []Dimension {
	return []Dimension{
		{
			ID: "openness", NameEn: "Openness", NameRu: "Открытость опыту",
			Segments: []Segment{
				{Level: 1, NameEn: "Conventional", NameRu: "Консервативный", ThetaMin: -3, ThetaMax: -1},
				{Level: 2, NameEn: "Moderate", NameRu: "Умеренный", ThetaMin: -1, ThetaMax: 0.5},
				{Level: 3, NameEn: "Curious", NameRu: "Любознательный", ThetaMin: 0.5, ThetaMax: 1.8},
				{Level: 4, NameEn: "Explorer", NameRu: "Исследователь", ThetaMin: 1.8, ThetaMax: 3},
			},
		},
		{
			ID: "conscientiousness", NameEn: "Conscientiousness", NameRu: "Добросовестность",
			Segments: []Segment{
				{Level: 1, NameEn: "Spontaneous", NameRu: "Спонтанный", ThetaMin: -3, ThetaMax: -1},
				{Level: 2, NameEn: "Flexible", NameRu: "Гибкий", ThetaMin: -1, ThetaMax: 0.5},
				{Level: 3, NameEn: "Organized", NameRu: "Организованный", ThetaMin: 0.5, ThetaMax: 1.8},
				{Level: 4, NameEn: "Disciplined", NameRu: "Дисциплинированный", ThetaMin: 1.8, ThetaMax: 3},
			},
		},
		{
			ID: "extraversion", NameEn: "Extraversion", NameRu: "Экстраверсия",
			Segments: []Segment{
				{Level: 1, NameEn: "Reserved", NameRu: "Сдержанный", ThetaMin: -3, ThetaMax: -1},
				{Level: 2, NameEn: "Ambiverted", NameRu: "Амбиверт", ThetaMin: -1, ThetaMax: 0.5},
				{Level: 3, NameEn: "Sociable", NameRu: "Общительный", ThetaMin: 0.5, ThetaMax: 1.8},
				{Level: 4, NameEn: "Energizer", NameRu: "Заводила", ThetaMin: 1.8, ThetaMax: 3},
			},
		},
		{
			ID: "agreeableness", NameEn: "Agreeableness", NameRu: "Доброжелательность",
			Segments: []Segment{
				{Level: 1, NameEn: "Challenger", NameRu: "Скептик", ThetaMin: -3, ThetaMax: -1},
				{Level: 2, NameEn: "Balanced", NameRu: "Сбалансированный", ThetaMin: -1, ThetaMax: 0.5},
				{Level: 3, NameEn: "Cooperative", NameRu: "Отзывчивый", ThetaMin: 0.5, ThetaMax: 1.8},
				{Level: 4, NameEn: "Altruist", NameRu: "Альтруист", ThetaMin: 1.8, ThetaMax: 3},
			},
		},
		{
			ID: "neuroticism", NameEn: "Neuroticism", NameRu: "Нейротизм",
			Segments: []Segment{
				{Level: 1, NameEn: "Resilient", NameRu: "Устойчивый", ThetaMin: -3, ThetaMax: -1},
				{Level: 2, NameEn: "Steady", NameRu: "Спокойный", ThetaMin: -1, ThetaMax: 0.5},
				{Level: 3, NameEn: "Sensitive", NameRu: "Чувствительный", ThetaMin: 0.5, ThetaMax: 1.8},
				{Level: 4, NameEn: "Reactive", NameRu: "Тревожный", ThetaMin: 1.8, ThetaMax: 3},
			},
		},
	}
}

func likert(id, dim string, a, b float64, reversed bool, text string) Item {
	return Item{
		ID: id, DimensionID: dim, Type: TypeLikert, Text: text,
		Discrimination: fp(a), Difficulty: fp(b), Reversed: reversed,
	}
}

func seedItems() []Item {
	items := []Item{
		// Openness.
		likert("opn-01", "openness", 1.9, 0.0, false, "I enjoy ideas that challenge how I see the world."),
		likert("opn-02", "openness", 1.4, -1.2, false, "I like trying food I have never heard of."),
		likert("opn-03", "openness", 1.2, 1.1, false, "I regularly make art, music, or writing of my own."),
		likert("opn-04", "openness", 1.5, -0.4, true, "I prefer routines over surprises."),
		likert("opn-05", "openness", 1.1, 1.9, false, "Abstract philosophical debates energize me."),
		likert("opn-06", "openness", 1.3, -2.0, false, "I am curious about how things work."),
		{
			ID: "opn-fc-01", DimensionID: "openness", Type: TypeForcedChoice,
			Text:           "A free weekend appears. You would rather:",
			Discrimination: fp(1.6), Difficulty: fp(0.5),
			Options: []AnswerOption{
				{Code: "a", Text: "Visit a place you have never been", Keyed: 1},
				{Code: "b", Text: "Revisit a place you already love", Keyed: -1},
			},
		},
		{
			ID: "opn-sc-01", DimensionID: "openness", Type: TypeScenario,
			Text:           "Your team proposes an untested approach to a familiar problem. You:",
			Discrimination: fp(1.3), Difficulty: fp(0.9),
			Options: []AnswerOption{
				{Code: "adopt", Text: "Push to try it immediately", Keyed: 1},
				{Code: "pilot", Text: "Suggest a small pilot first", Keyed: 0},
				{Code: "keep", Text: "Argue for the proven approach", Keyed: -1},
			},
		},
		{
			ID: "opn-open-01", DimensionID: "openness", Type: TypeOpen,
			Text: "Tell me about the last time you changed your mind about something important.",
		},
		{
			ID: "opn-cc-01", DimensionID: "openness", Type: TypeConsistencyCheck,
			Text: "I enjoy encountering ideas that challenge my worldview.",
		},

		// Conscientiousness.
		likert("con-01", "conscientiousness", 2.0, 0.1, false, "I finish tasks well before their deadline."),
		likert("con-02", "conscientiousness", 1.5, -1.0, false, "I keep my living space tidy."),
		likert("con-03", "conscientiousness", 1.2, 1.4, false, "I plan my week in detail before it starts."),
		likert("con-04", "conscientiousness", 1.6, -0.3, true, "I often leave things to the last minute."),
		likert("con-05", "conscientiousness", 1.1, 2.0, false, "I keep written records of my personal goals."),
		likert("con-06", "conscientiousness", 1.4, -1.8, false, "People can rely on me to do what I promised."),
		{
			ID: "con-fc-01", DimensionID: "conscientiousness", Type: TypeForcedChoice,
			Text:           "When starting a project you usually:",
			Discrimination: fp(1.7), Difficulty: fp(0.4),
			Options: []AnswerOption{
				{Code: "a", Text: "Write a plan before doing anything", Keyed: 1},
				{Code: "b", Text: "Dive in and figure it out as you go", Keyed: -1},
			},
		},
		{
			ID: "con-sc-01", DimensionID: "conscientiousness", Type: TypeScenario,
			Text:           "You notice a small mistake in work you already submitted. You:",
			Discrimination: fp(1.3), Difficulty: fp(-0.6),
			Options: []AnswerOption{
				{Code: "fix", Text: "Correct it and resubmit right away", Keyed: 1},
				{Code: "note", Text: "Mention it if anyone asks", Keyed: 0},
				{Code: "skip", Text: "Leave it, it is minor", Keyed: -1},
			},
		},
		{
			ID: "con-open-01", DimensionID: "conscientiousness", Type: TypeOpen,
			Text: "Describe how you organized something complicated recently.",
		},
		{
			ID: "con-cc-01", DimensionID: "conscientiousness", Type: TypeConsistencyCheck,
			Text: "I complete my work ahead of deadlines.",
		},

		// Extraversion.
		likert("ext-01", "extraversion", 2.1, 0.0, false, "I feel energized after spending time in a big group."),
		likert("ext-02", "extraversion", 1.5, -1.1, false, "I start conversations with people I do not know."),
		likert("ext-03", "extraversion", 1.2, 1.3, false, "I am usually the one who gets the party going."),
		likert("ext-04", "extraversion", 1.7, 0.3, true, "I need a lot of quiet time to recharge."),
		likert("ext-05", "extraversion", 1.1, 1.8, false, "I enjoy being the center of attention."),
		likert("ext-06", "extraversion", 1.3, -1.9, false, "Talking with friends is one of my favorite activities."),
		{
			ID: "ext-fc-01", DimensionID: "extraversion", Type: TypeForcedChoice,
			Text:           "Friday evening. You would rather:",
			Discrimination: fp(1.8), Difficulty: fp(0.2),
			Options: []AnswerOption{
				{Code: "a", Text: "Go out where the people are", Keyed: 1},
				{Code: "b", Text: "Stay in with a book or a show", Keyed: -1},
			},
		},
		{
			ID: "ext-sc-01", DimensionID: "extraversion", Type: TypeScenario,
			Text:           "At a conference where you know nobody, you:",
			Discrimination: fp(1.4), Difficulty: fp(0.8),
			Options: []AnswerOption{
				{Code: "mingle", Text: "Walk up to strangers and introduce yourself", Keyed: 1},
				{Code: "wait", Text: "Wait for someone to approach you", Keyed: 0},
				{Code: "leave", Text: "Attend the talks and skip the socializing", Keyed: -1},
			},
		},
		{
			ID: "ext-open-01", DimensionID: "extraversion", Type: TypeOpen,
			Text: "What does an ideal weekend look like for you, and who is in it?",
		},
		{
			ID: "ext-cc-01", DimensionID: "extraversion", Type: TypeConsistencyCheck,
			Text: "Large social gatherings leave me feeling energized.",
		},

		// Agreeableness.
		likert("agr-01", "agreeableness", 1.8, -0.1, false, "I go out of my way to make others feel comfortable."),
		likert("agr-02", "agreeableness", 1.4, -1.2, false, "I trust people until they give me a reason not to."),
		likert("agr-03", "agreeableness", 1.2, 1.2, false, "I put others' needs ahead of my own."),
		likert("agr-04", "agreeableness", 1.6, 0.2, true, "I enjoy a good argument more than agreement."),
		likert("agr-05", "agreeableness", 1.1, 1.9, false, "I forgive people quickly, even for serious things."),
		likert("agr-06", "agreeableness", 1.3, -1.8, false, "I feel others' emotions almost as if they were mine."),
		{
			ID: "agr-fc-01", DimensionID: "agreeableness", Type: TypeForcedChoice,
			Text:           "In a disagreement with a friend you tend to:",
			Discrimination: fp(1.5), Difficulty: fp(0.3),
			Options: []AnswerOption{
				{Code: "a", Text: "Look for common ground first", Keyed: 1},
				{Code: "b", Text: "Make sure your point lands first", Keyed: -1},
			},
		},
		{
			ID: "agr-sc-01", DimensionID: "agreeableness", Type: TypeScenario,
			Text:           "A colleague takes credit for your idea in a meeting. You:",
			Discrimination: fp(1.3), Difficulty: fp(-0.5),
			Options: []AnswerOption{
				{Code: "private", Text: "Raise it with them privately afterwards", Keyed: 1},
				{Code: "public", Text: "Correct the record on the spot", Keyed: -1},
				{Code: "drop", Text: "Let it go this time", Keyed: 0},
			},
		},
		{
			ID: "agr-open-01", DimensionID: "agreeableness", Type: TypeOpen,
			Text: "Tell me about a time you helped someone when it cost you something.",
		},
		{
			ID: "agr-cc-01", DimensionID: "agreeableness", Type: TypeConsistencyCheck,
			Text: "Making other people comfortable matters a lot to me.",
		},

		// Neuroticism.
		likert("neu-01", "neuroticism", 1.9, 0.0, false, "I worry about things that might go wrong."),
		likert("neu-02", "neuroticism", 1.4, -1.1, false, "My mood can change quickly over small things."),
		likert("neu-03", "neuroticism", 1.2, 1.2, false, "Criticism stays with me for days."),
		likert("neu-04", "neuroticism", 1.6, -0.2, true, "I stay calm under pressure."),
		likert("neu-05", "neuroticism", 1.1, 1.8, false, "I often feel tense without knowing exactly why."),
		likert("neu-06", "neuroticism", 1.3, -1.9, false, "Unexpected changes of plan unsettle me."),
		{
			ID: "neu-fc-01", DimensionID: "neuroticism", Type: TypeForcedChoice,
			Text:           "Before an important event you usually feel:",
			Discrimination: fp(1.6), Difficulty: fp(0.3),
			Options: []AnswerOption{
				{Code: "a", Text: "Keyed up, replaying what could go wrong", Keyed: 1},
				{Code: "b", Text: "Calm, it will go how it goes", Keyed: -1},
			},
		},
		{
			ID: "neu-sc-01", DimensionID: "neuroticism", Type: TypeScenario,
			Text:           "You send a message and get no reply for a day. You:",
			Discrimination: fp(1.4), Difficulty: fp(0.7),
			Options: []AnswerOption{
				{Code: "spiral", Text: "Start wondering what you did wrong", Keyed: 1},
				{Code: "nudge", Text: "Send a light follow-up", Keyed: 0},
				{Code: "forget", Text: "Forget about it until they answer", Keyed: -1},
			},
		},
		{
			ID: "neu-open-01", DimensionID: "neuroticism", Type: TypeOpen,
			Text: "How do you usually handle a stressful week?",
		},
		{
			ID: "neu-cc-01", DimensionID: "neuroticism", Type: TypeConsistencyCheck,
			Text: "I tend to worry about what might go wrong.",
		},
	}

	// The highest-discrimination likert item of each dimension doubles as
	// the anchor the session starts from.
	anchorIDs := map[string]bool{
		"opn-01": true, "con-01": true, "ext-01": true, "agr-01": true, "neu-01": true,
	}
	for i := range items {
		if anchorIDs[items[i].ID] {
			items[i].Anchor = true
		}
	}
	return items
}
