package registry

// The built-in composition templates. Schema order matters: the form
// materializer renders fields in exactly this order.
var templates = []*CompositionTemplate{
	{
		ID:          "TextReveal",
		DisplayName: "Text Reveal",
		Description: "Animierter Text-Einflug mit optionalem Blitzeffekt",
		Category:    CategoryBRoll,
		Schema: []Field{
			{Name: "text", Spec: stringField("Anzuzeigender Text", 1, 0, "")},
			{Name: "fontSize", Spec: numberField("Schriftgröße in px", 20, 200)},
			{Name: "textColor", Spec: colorField("Textfarbe (Hex)")},
			{Name: "backgroundColor", Spec: colorField("Hintergrundfarbe (Hex)")},
			{Name: "animationStyle", Spec: enumField("Animationsart", "slide", "fade", "scale")},
			{Name: "hasFlash", Spec: boolField("Blitzeffekt ein/aus")},
			{Name: "durationInFrames", Spec: numberField("Dauer in Frames (30fps)", 15, 300)},
		},
		Defaults: ParameterSet{
			"text":             "MotionCut",
			"fontSize":         float64(80),
			"textColor":        "#e4e4e7",
			"backgroundColor":  "#0a0a0f",
			"animationStyle":   "slide",
			"hasFlash":         true,
			"durationInFrames": float64(90),
		},
	},
	{
		ID:          "WordSlam",
		DisplayName: "Word Slam",
		Description: "Ein Wort knallt groß rein – bold und aufmerksamkeitsstark",
		Category:    CategoryBRoll,
		Schema: []Field{
			{Name: "word", Spec: stringField("Das Wort (kurz!)", 1, 20, "")},
			{Name: "fontSize", Spec: numberField("Schriftgröße in px", 40, 300)},
			{Name: "textColor", Spec: colorField("Textfarbe (Hex)")},
			{Name: "backgroundColor", Spec: colorField("Hintergrundfarbe (Hex)")},
			{Name: "hasBlitz", Spec: boolField("Blitz-/Lichteffekt")},
			{Name: "durationInFrames", Spec: numberField("Dauer in Frames (30fps)", 15, 150)},
		},
		Defaults: ParameterSet{
			"word":             "BOOM",
			"fontSize":         float64(160),
			"textColor":        "#f59e0b",
			"backgroundColor":  "#0a0a0f",
			"hasBlitz":         true,
			"durationInFrames": float64(60),
		},
	},
	{
		ID:          "IntroSequence",
		DisplayName: "Intro Sequence",
		Description: "Titel + Untertitel mit Übergangsanimationen",
		Category:    CategoryIntro,
		Schema: []Field{
			{Name: "title", Spec: stringField("Haupttitel", 1, 0, "")},
			{Name: "subtitle", Spec: stringField("Untertitel", 0, 0, "")},
			{Name: "primaryColor", Spec: colorField("Primärfarbe (Hex)")},
			{Name: "secondaryColor", Spec: colorField("Sekundärfarbe (Hex)")},
			{Name: "backgroundColor", Spec: colorField("Hintergrundfarbe (Hex)")},
			{Name: "animationSpeed", Spec: numberField("Animationsgeschwindigkeit (Multiplikator)", 0.5, 3)},
			{Name: "durationInFrames", Spec: numberField("Dauer in Frames (30fps)", 60, 450)},
		},
		Defaults: ParameterSet{
			"title":            "MotionCut",
			"subtitle":         "Video Generation Dashboard",
			"primaryColor":     "#00b4d8",
			"secondaryColor":   "#f59e0b",
			"backgroundColor":  "#0a0a0f",
			"animationSpeed":   float64(1),
			"durationInFrames": float64(150),
		},
	},
	{
		ID:          "OutroSequence",
		DisplayName: "Outro Sequence",
		Description: "CTA + Kanal-Branding mit Fade-Out",
		Category:    CategoryOutro,
		Schema: []Field{
			{Name: "ctaText", Spec: stringField("Call-to-Action Text", 1, 0, "")},
			{Name: "channelName", Spec: stringField("Kanal-/Markenname", 1, 0, "")},
			{Name: "primaryColor", Spec: colorField("Primärfarbe (Hex)")},
			{Name: "backgroundColor", Spec: colorField("Hintergrundfarbe (Hex)")},
			{Name: "showSubscribe", Spec: boolField("Abo-Button anzeigen")},
			{Name: "durationInFrames", Spec: numberField("Dauer in Frames (30fps)", 60, 300)},
		},
		Defaults: ParameterSet{
			"ctaText":          "Subscribe for more!",
			"channelName":      "MotionCut",
			"primaryColor":     "#00b4d8",
			"backgroundColor":  "#0a0a0f",
			"showSubscribe":    true,
			"durationInFrames": float64(120),
		},
	},
	{
		ID:          "SocialHook",
		DisplayName: "Social Hook",
		Description: "Kurzer, aufmerksamkeitsstarker Clip für Social Media",
		Category:    CategorySocial,
		Schema: []Field{
			{Name: "mainText", Spec: stringField("Haupttext (Hook)", 1, 0, "")},
			{Name: "accentText", Spec: stringField("Akzent-/Highlight-Text", 0, 0, "")},
			{Name: "textColor", Spec: colorField("Textfarbe (Hex)")},
			{Name: "accentColor", Spec: colorField("Akzentfarbe (Hex)")},
			{Name: "backgroundColor", Spec: colorField("Hintergrundfarbe (Hex)")},
			{Name: "aspectRatio", Spec: enumField("Seitenverhältnis", "16:9", "9:16", "1:1")},
			{Name: "durationInFrames", Spec: numberField("Dauer in Frames (30fps)", 30, 180)},
		},
		Defaults: ParameterSet{
			"mainText":         "Most brands don't have a sales problem",
			"accentText":       "They have a trust problem",
			"textColor":        "#e4e4e7",
			"accentColor":      "#f59e0b",
			"backgroundColor":  "#0a0a0f",
			"aspectRatio":      "16:9",
			"durationInFrames": float64(90),
		},
	},
}
