package views

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pescuma/strategist/lib/model"
)

const researchDisclaimer = "The information presented in this section is for demonstration purposes. " +
	"In a real-world scenario, this would be generated by an advanced AI model for research and analysis. " +
	"While we strive for accuracy, this content may contain inaccuracies or outdated information and should " +
	"not be considered a substitute for professional strategic advice. Please verify critical information " +
	"through independent sources."

var researchTrends = []struct{ title, text string }{
	{"On-Device AI Processing", "Consumers expect faster, more private AI features running directly on hardware, reducing latency and reliance on the cloud."},
	{"Sustainability & Right-to-Repair", "Growing regulatory pressure and consumer demand are pushing manufacturers towards more sustainable materials and easier device repairability."},
	{"Advanced Biometric Integration", "For wearables and personal devices, the next frontier includes non-invasive sensors for metrics like blood glucose and hydration levels."},
	{"Cross-Platform Seamlessness", "The winning ecosystem will be the one that allows users to move effortlessly between phone, tablet, watch, and computer."},
}

var researchNews = []struct{ title, text string }{
	{"TechCrunch: The Race for the 5-Day Battery in Wearables Heats Up", "A deep dive into the battery technology that could define the next generation of smartwatches."},
	{"Bloomberg: Component Shortages Expected to Impact Q4 Smartphone Production", "Analysts predict supply chain constraints will affect holiday season inventory for major players."},
	{"The Verge: Is the Foldable Tablet the Future of Productivity?", "Hands-on with the latest foldable devices that promise to replace your laptop."},
}

// markdownEscaper keeps user text from being read as markdown markup.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "<", `\<`, "#", `\#`,
)

// DeepResearchMarkdown returns the static research text for a product. Only the product
// name and business unit change between products.
func DeepResearchMarkdown(p *model.Product) string {
	name := markdownEscaper.Replace(p.ProductInfo.Name)
	unit := markdownEscaper.Replace(p.ProductInfo.BusinessUnit)

	var sb strings.Builder

	sb.WriteString("> **Disclaimer**\n>\n> ")
	sb.WriteString(researchDisclaimer)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "### Market & Segment Analysis (%v)\n\n", unit)
	fmt.Fprintf(&sb, "The %v competes in the highly dynamic %v sector. ", name, unit)
	sb.WriteString("Current analysis indicates a market shift towards products with enhanced AI capabilities, " +
		"longer lifecycle support, and sustainable manufacturing processes. Consumer decision-making is " +
		"increasingly influenced by ecosystem integration and data privacy features.\n\n")

	sb.WriteString("### Key Trends to Watch\n\n")
	for _, t := range researchTrends {
		fmt.Fprintf(&sb, "- **%v:** %v\n", t.title, t.text)
	}
	sb.WriteString("\n")

	sb.WriteString("### Interesting News & Links\n\n")
	for _, n := range researchNews {
		fmt.Fprintf(&sb, "- **%v**  \n  %v\n", n.title, n.text)
	}

	return sb.String()
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// MarkdownToHTML renders markdown. Raw HTML in the source is dropped.
func MarkdownToHTML(src string) (template.HTML, error) {
	var buf bytes.Buffer

	err := markdown.Convert([]byte(src), &buf)
	if err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}

// MarkdownToTerminal renders markdown for a terminal of the given width. An empty style
// detects it from the terminal background.
func MarkdownToTerminal(src string, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}

	return renderer.Render(src)
}

func NewDeepResearchCard(p *model.Product) (*DeepResearchCard, error) {
	md := DeepResearchMarkdown(p)

	html, err := MarkdownToHTML(md)
	if err != nil {
		return nil, err
	}

	return &DeepResearchCard{
		Title:    "Deep Research & Analysis",
		Markdown: md,
		HTML:     html,
	}, nil
}
