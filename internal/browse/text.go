package browse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/careerfeed/internal/filter"
	"github.com/amishk599/careerfeed/internal/markup"
	"github.com/amishk599/careerfeed/internal/model"
)

var breakRegex = regexp.MustCompile(`(?i)<br\s*/?>`)

// richToTerminal turns limited rich text (br, em, strong) into plain lines.
func richToTerminal(s string) string {
	var lines []string
	blank := false
	for _, seg := range breakRegex.Split(s, -1) {
		line := markup.DecodeEntities(markup.StripTags(seg))
		if line == "" {
			if !blank && len(lines) > 0 {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		lines = append(lines, line)
		blank = false
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// wordWrap wraps each line of text to width display cells.
func wordWrap(text string, width int) string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(w) <= width {
				line += " " + w
			} else {
				out = append(out, line)
				line = w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// DepartmentCounts counts jobs per department, with the total under the
// "All departments" option.
func DepartmentCounts(jobs []model.Job) map[string]int {
	counts := map[string]int{filter.AllDepartments: len(jobs)}
	for _, j := range jobs {
		if j.Department != "" {
			counts[j.Department]++
		}
	}
	return counts
}

func pluralJobs(label string, n int) string {
	if n == 1 {
		return fmt.Sprintf("%s (1 job)", label)
	}
	return fmt.Sprintf("%s (%d jobs)", label, n)
}

func postedLabel(j model.Job) string {
	t, ok := j.PublishedAt()
	if !ok {
		return "n/a"
	}
	return t.Format("2006-01-02")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
