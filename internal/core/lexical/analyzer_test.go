package lexical

import (
	"math"
	"testing"

	"reviewtrust/internal/core/signal"
)

var shared = Default()

func score(t *testing.T, o *signal.Output) float64 {
	t.Helper()
	v, ok := o.Value()
	if !ok {
		t.Fatalf("expected a known score, got unknown")
	}
	return v
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAnalyze_ShortTextIsUnknown(t *testing.T) {
	got := shared.Analyze("too short")
	if len(got) != 5 {
		t.Fatalf("want 5 signals, got %d", len(got))
	}
	for name, o := range got {
		if o.Known() {
			t.Fatalf("%s should be unknown for short text", name)
		}
	}
}

func TestAnalyze_ScoresInRange(t *testing.T) {
	texts := []string{
		"I bought this after my old one died. The motor is loud, but it crushes ice in seconds because the blades are sharp.",
		"Amazing amazing amazing! Best best best! Perfect perfect perfect! Incredible product, buy it now, buy it now.",
		"It's worth noting that this blender seamlessly integrates into any kitchen. In conclusion, a game-changer.",
		"Received it on Tuesday. Box was dented, manual missing, returned it for a refund two days later.",
	}
	for _, txt := range texts {
		for name, o := range shared.Analyze(txt) {
			v := score(t, o)
			if v < 0 || v > 1 {
				t.Fatalf("%s=%v out of range for %q", name, v, txt)
			}
		}
	}
}

func TestTemplateMatching(t *testing.T) {
	clean := shared.Prepare("The lid cracked after two weeks and the motor smells hot when I crush ice.")
	if v := score(t, shared.TemplateMatching(clean)); v != 1 {
		t.Fatalf("clean text: %v want 1", v)
	}

	one := shared.Prepare("Honestly it works exactly as described and the jar is easy to clean.")
	if v := score(t, shared.TemplateMatching(one)); !near(v, 0.7) {
		t.Fatalf("one template: %v want 0.7", v)
	}

	many := shared.Prepare("I received this product for free in exchange for my honest review. " +
		"Works exactly as described. You won’t regret it, five stars all the way.")
	o := shared.TemplateMatching(many)
	if v := score(t, o); v != 0 {
		t.Fatalf("four or more templates: %v want 0", v)
	}
	if o.Detail == "" {
		t.Fatalf("expected detail on flagged output")
	}
}

func TestAIDetection(t *testing.T) {
	clean := shared.Prepare("The lid cracked after two weeks and the motor smells hot when I crush ice.")
	o := shared.AIDetection(clean)
	if v := score(t, o); v != 1 || o.Detail != "" {
		t.Fatalf("clean text: %v %q", v, o.Detail)
	}

	// three stock phrases in a short text saturate the 0.5 cap
	ai := shared.Prepare("It's worth noting that this blender delivers. In conclusion, it is a game-changer.")
	o = shared.AIDetection(ai)
	if v := score(t, o); !near(v, 0.5) {
		t.Fatalf("ai phrases: %v want 0.5", v)
	}
	if o.Detail == "" {
		t.Fatalf("expected detail")
	}

	hype := shared.Prepare("Amazing, incredible, awesome, fantastic blender. Perfect!")
	o = shared.AIDetection(hype)
	if v := score(t, o); !near(v, 0.6) || o.Detail == "" {
		t.Fatalf("hype saturation: %v %q want 0.6 with detail", v, o.Detail)
	}

	// one hype word is below the density trigger, so nothing is flagged
	mild := shared.Prepare("The lid cracked after two weeks, which is a shame because the amazing motor still crushes ice in seconds. " +
		"I glued the crack with food safe epoxy and it has held for a month of daily smoothies without leaking onto the counter.")
	o = shared.AIDetection(mild)
	if v := score(t, o); v != 1 || o.Detail != "" {
		t.Fatalf("single hype word: %v %q", v, o.Detail)
	}
}

func TestRepetitionPattern(t *testing.T) {
	single := shared.Prepare("This blender handles frozen fruit without any trouble at all")
	if v := score(t, shared.RepetitionPattern(single)); v != 0.5 {
		t.Fatalf("single sentence: %v want 0.5", v)
	}

	formulaic := shared.Prepare("This blender is great. This blender is fast. This blender is quiet. This blender is cheap.")
	o := shared.RepetitionPattern(formulaic)
	if v := score(t, o); v > 0.05 {
		t.Fatalf("formulaic: %v want ~0", v)
	}
	if o.Detail == "" {
		t.Fatalf("expected detail")
	}

	natural := shared.Prepare("I bought this after my old one died. The motor is loud, but it crushes ice in seconds because the blades are sharp. " +
		"Cleaning takes a while since the lid has a rubber seal that traps gunk around the edges.")
	if v := score(t, shared.RepetitionPattern(natural)); v < 0.9 {
		t.Fatalf("natural: %v want >= 0.9", v)
	}

	// "the motor hums" recurs three times; the small trigram penalty lowers the score without a note
	echo := shared.Prepare("I bought this blender after my old one died, and the motor hums quietly. " +
		"Crushing ice takes about ten seconds because the blades are sharp and angled. " +
		"My kids use it for smoothies every morning before school while I pack lunches, and the motor hums softly even then. " +
		"Cleaning is annoying since the rubber seal under the lid traps bits of banana and spinach around the edges. " +
		"The jar feels sturdy, though the measurement markings started fading after a month in the dishwasher. " +
		"Customer support replaced a cracked tamper within a week when I emailed photos. " +
		"Frozen mango blends smoothly, but whole almonds leave a gritty texture unless you soak them overnight first. " +
		"At night the motor hums low enough that nobody upstairs wakes up. " +
		"Compared with my sister's pricier model, this one heats up faster during long soup batches, which worries me slightly. " +
		"Overall I would buy it again for the price, although a longer cord would help in our cramped kitchen.")
	o = shared.RepetitionPattern(echo)
	if v := score(t, o); v >= 1 || v < 0.9 || o.Detail != "" {
		t.Fatalf("light repetition: %v %q want (0.9,1) without detail", v, o.Detail)
	}
}

func TestSentimentConsistency(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"unqualified praise", "Amazing product, I love it so much, it is perfect and great.", 0.15},
		{"praise with a detail", "Love it, my daughter uses it every morning and it is perfect for her smoothies.", 0.45},
		{"hedged", "The blender works well enough, but the lid is a bit stiff when the kitchen is cold.", 0.85},
		{"neutral", "The package arrived on Tuesday and the box contained the blender and a manual.", 0.60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if v := score(t, shared.SentimentConsistency(shared.Prepare(tc.text))); !near(v, tc.want) {
				t.Fatalf("got %v want %v", v, tc.want)
			}
		})
	}
}

func TestSpecificity(t *testing.T) {
	txt := shared.Prepare("It holds 2 liters, costs $40, and is 3/4 the size of the Ninja we had.")
	if n := shared.specificity(txt); n != 4 {
		t.Fatalf("specificity=%d want 4", n)
	}
}

func TestVocabularyDistribution(t *testing.T) {
	few := shared.Prepare("Solid blender with a sturdy glass jar and sharp blades.")
	if v := score(t, shared.VocabularyDistribution(few)); v != 0.5 {
		t.Fatalf("few tokens: %v want 0.5", v)
	}

	vague := shared.Prepare("Good product, really good, very nice, great quality, love it, really great stuff, " +
		"very good item, nice thing, great product, good quality, really nice.")
	o := shared.VocabularyDistribution(vague)
	if v := score(t, o); v > 0.45 {
		t.Fatalf("vague: %v want < 0.45", v)
	}
	if o.Detail == "" {
		t.Fatalf("expected detail")
	}
}
