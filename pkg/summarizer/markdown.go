package summarizer

import (
	"fmt"
	"strings"
)

// Translator maps an English label to the output language.
type Translator func(key string) string

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	t       Translator
	version string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the label translator.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) { f.t = t }
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) { f.version = version }
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{t: func(key string) string { return key }}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var sb strings.Builder
	t := f.t

	fmt.Fprintf(&sb, "# %s\n\n", t("Render Summary"))
	fmt.Fprintf(&sb, "%s: %s\n\n", t("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05"))

	// Settings
	s := summary.Settings
	fmt.Fprintf(&sb, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	row(&sb, t("Frame"), orNone(s.Frame, t))
	row(&sb, t("Background"), orNone(s.Background, t))
	row(&sb, t("Padding"), fmt.Sprintf("%d px", s.Padding))
	row(&sb, t("Zoom"), fmt.Sprintf("%.2fx", s.Zoom))
	row(&sb, t("Border Radius"), fmt.Sprintf("%g px", s.BorderRadius))
	if s.Rotation != 0 {
		row(&sb, t("Rotation"), fmt.Sprintf("%g°", s.Rotation))
	}
	if s.OutputWidth > 0 && s.OutputHeight > 0 {
		row(&sb, t("Output Size"), fmt.Sprintf("%dx%d", s.OutputWidth, s.OutputHeight))
	} else {
		row(&sb, t("Output Size"), t("Derived"))
	}
	if s.ShadowOpacity > 0 {
		row(&sb, t("Shadow"), fmt.Sprintf("%g px, %g%%", s.ShadowBlur, s.ShadowOpacity))
	} else {
		row(&sb, t("Shadow"), t("None"))
	}
	if s.TextOverlays > 0 {
		row(&sb, t("Text Overlays"), fmt.Sprintf("%d", s.TextOverlays))
	}
	if s.Format != "" {
		row(&sb, t("Format"), s.Format)
	}
	if s.Workers > 0 {
		row(&sb, t("Workers"), fmt.Sprintf("%d", s.Workers))
	}
	sb.WriteString("\n")

	// Renders
	fmt.Fprintf(&sb, "## %s\n\n", t("Results"))
	if len(summary.Renders) == 0 {
		fmt.Fprintf(&sb, "%s\n\n", t("No images rendered"))
	} else {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n|---|---|---|---|\n",
			t("Input"), t("Output"), t("Canvas Size"), t("File Size"))
		for _, r := range summary.Renders {
			fmt.Fprintf(&sb, "| %s | %s | %dx%d | %s |\n",
				r.Input, r.Output, r.CanvasWidth, r.CanvasHeight, formatBytes(r.FileSize))
		}
		sb.WriteString("\n")
		if len(summary.Renders) > 1 {
			fmt.Fprintf(&sb, "%s: %s\n\n", t("Total Size"), formatBytes(summary.TotalBytes()))
		}
	}

	sb.WriteString("---\n")
	if f.version != "" {
		fmt.Fprintf(&sb, "%s mockshot %s\n", t("Generated by"), f.version)
	} else {
		fmt.Fprintf(&sb, "%s mockshot\n", t("Generated by"))
	}

	return sb.String()
}

func row(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "| %s | %s |\n", label, value)
}

func orNone(v string, t Translator) string {
	if v == "" || v == "none" {
		return t("None")
	}
	return v
}

// formatBytes formats a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
