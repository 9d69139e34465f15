package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dmejia/credeval/internal/evaluate"
	"github.com/dmejia/credeval/internal/rules"
	"github.com/dmejia/credeval/internal/transcript"
)

// Palette tuned for registrar terminals: restrained, readable on dark
// backgrounds.
var (
	colorHeading  = lipgloss.Color("#60A5FA") // Blue
	colorAccepted = lipgloss.Color("#22C55E") // Green
	colorRejected = lipgloss.Color("#F43F5E") // Rose
	colorWarning  = lipgloss.Color("#F59E0B") // Amber
	colorDim      = lipgloss.Color("#94A3B8") // Slate
	colorBorder   = lipgloss.Color("#334155") // Slate
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeading)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	acceptedStyle = lipgloss.NewStyle().
			Foreground(colorAccepted).
			Bold(true)

	rejectedStyle = lipgloss.NewStyle().
			Foreground(colorRejected).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	reasonStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(4)

	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)
)

// Options controls what the renderer includes.
type Options struct {
	// ShowConfidence includes per-field confidence annotations on each
	// verdict. Off by default: confidence data describes extraction
	// quality and is only meaningful to staff reviewing the extraction.
	ShowConfidence bool
}

// Render produces the full human-readable evaluation report.
func Render(res *evaluate.Result, opts Options) string {
	var b strings.Builder

	b.WriteString(renderHeader(res))
	b.WriteString("\n\n")

	for i, v := range res.Verdicts {
		b.WriteString(renderVerdict(i, v))
		if opts.ShowConfidence && res.Annotations != nil {
			key := transcript.CourseKey{Position: i, Code: v.Course.Code}
			b.WriteString(renderAnnotations(res, key))
		}
	}

	b.WriteString("\n")
	b.WriteString(renderSummary(res))
	b.WriteString("\n")

	return b.String()
}

func renderHeader(res *evaluate.Result) string {
	title := headingStyle.Render("Transfer Credit Evaluation")
	inst := fmt.Sprintf("%s  %s",
		labelStyle.Render("Institution:"), res.Institution.Name)
	policy := fmt.Sprintf("%s  %s",
		labelStyle.Render("Policy:"), res.PolicyVersion)
	run := fmt.Sprintf("%s  %s",
		labelStyle.Render("Run:"), res.RunID)

	return lipgloss.JoinVertical(lipgloss.Left, title, inst, policy, run)
}

func renderVerdict(i int, v rules.Verdict) string {
	var b strings.Builder

	name := v.Course.Code
	if v.Course.Name != "" && v.Course.Name != v.Course.Code {
		name = fmt.Sprintf("%s %s", v.Course.Code, v.Course.Name)
	}

	if v.Accepted {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			acceptedStyle.Render("ACCEPT"),
			name,
			labelStyle.Render(fmt.Sprintf("(%s credits)", v.AdjustedCredits))))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", rejectedStyle.Render("REJECT"), name))
	}

	for _, r := range v.Reasons {
		b.WriteString(reasonStyle.Render(r))
		b.WriteString("\n")
	}
	for _, w := range v.Warnings {
		b.WriteString(reasonStyle.Render(warningStyle.Render("warning: " + w)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderAnnotations(res *evaluate.Result, key transcript.CourseKey) string {
	anns := res.Annotations.ForCourse(key)
	if len(anns) == 0 {
		return ""
	}

	var parts []string
	for _, a := range anns {
		s := fmt.Sprintf("%s %.2f", a.Field, a.Score)
		if a.Low {
			s = warningStyle.Render(s + " (low)")
		}
		parts = append(parts, s)
	}
	return reasonStyle.Render(labelStyle.Render("confidence: ")+strings.Join(parts, "  ")) + "\n"
}

func renderSummary(res *evaluate.Result) string {
	lines := []string{
		fmt.Sprintf("%s %s", labelStyle.Render("Transferable credits:"),
			headingStyle.Render(res.TotalTransferCredits.String())),
		fmt.Sprintf("%s %d accepted, %d rejected", labelStyle.Render("Courses:"),
			res.AcceptedCourses, res.RejectedCourses),
	}
	if n := len(res.Warnings); n > 0 {
		lines = append(lines, warningStyle.Render(fmt.Sprintf("%d warning(s)", n)))
	}

	return summaryBox.Render(strings.Join(lines, "\n"))
}
