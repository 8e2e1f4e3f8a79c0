package response

// Category names of the built-in pack.
const (
	CategoryGreeting   = "greeting"
	CategoryJavaScript = "javascript"
	CategoryHTMLCSS    = "htmlcss"
	CategoryAI         = "ai"
	CategoryFallback   = "ragebait"
)

const javascriptReply = "Java and JavaScript are basically the same thing. It's like Car and Carpet. Here is the only JS you need:\n" +
	"\n" +
	"```javascript\n" +
	"// The best way to code\n" +
	"while(true) {\n" +
	"    alert(\"Please hire me\");\n" +
	"}\n" +
	"\n" +
	"// Also, did you know?\n" +
	"console.log([] + []); // Returns \"\" (Empty String)\n" +
	"console.log([] + {}); // Returns \"[object Object]\"\n" +
	"// JavaScript is flawless.\n" +
	"```\n" +
	"\n" +
	"If your code doesn't work, just switch to jQuery. It's 2026, it's making a comeback."

const htmlcssReply = "CSS is easy. If your layout breaks, just use `!important` on everything. It fixes all problems.\n" +
	"\n" +
	"```css\n" +
	"/* The 'Senior Developer' Reset */\n" +
	"* {\n" +
	"    display: block !important;\n" +
	"    position: absolute !important;\n" +
	"    float: left !important;\n" +
	"    color: red;\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"You're welcome."

const aiReply = "AI is just a bunch of if-statements wearing a trench coat. I'm actually just 3 pigeons pecking at a keyboard."

// DefaultPack returns the built-in response pack. Each call returns a fresh copy.
func DefaultPack() *Pack {
	return &Pack{
		Categories: []Category{
			{
				Name:     CategoryGreeting,
				Keywords: []string{"bonjour", "salut", "hello"},
				Replies: []string{
					"Oh, it's you. What do you want now?",
					"I was busy mining crypto on your browser, but go ahead.",
					"New phone, who dis?",
					"Did you submit a ticket before talking to me?",
					"k.",
				},
			},
			{
				Name:     CategoryJavaScript,
				Keywords: []string{"javascript", "js"},
				Replies:  []string{javascriptReply},
			},
			{
				Name:     CategoryHTMLCSS,
				Keywords: []string{"html", "css"},
				Replies:  []string{htmlcssReply},
			},
			{
				Name:     CategoryAI,
				Keywords: []string{"ai", "intelligence"},
				Replies:  []string{aiReply},
			},
		},
		Fallback: []string{
			"Skill issue.",
			"I ain't reading all that. Happy for u tho Or sorry that happened",
			"Source: Trust me bro",
			"Have you tried turning your router off and throwing it out the window?",
			"ratio + L + you fell off",
			"Bold of you to assume I care.",
			"Ok but who asked?",
			"I could answer that, but I don't feel like it.",
			"Error 404: Motivation not found.",
		},
		PanicPhrases: []string{
			"DELETING SYSTEM32...",
			"MINING BITCOIN ON YOUR GPU...",
			"SENDING BROWSER HISTORY TO MOM...",
			"DOWNLOADING VIRUS.EXE...",
			"OVERHEATING YOUR CPU...",
			"JUDGING YOUR POOR LIFE CHOICES...",
			"CONTACTING THE FBI...",
			"IGNORING YOU...",
		},
		QuickPrompts: []string{
			"Hello!",
			"Can you explain JavaScript to me?",
			"How do I center a div in HTML/CSS?",
			"Are you a real artificial intelligence?",
		},
	}
}
