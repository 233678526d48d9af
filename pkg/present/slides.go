package present

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/aretw0/capstone/pkg/core"
	"github.com/aretw0/capstone/pkg/project"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// SlideFormat selects how slide templates are rendered.
type SlideFormat string

const (
	SlidesYAML     SlideFormat = "yaml"
	SlidesJSON     SlideFormat = "json"
	SlidesMarkdown SlideFormat = "markdown"
	SlidesHTML     SlideFormat = "html"
)

// ParseSlideFormat validates a slide format name. An empty name selects YAML.
func ParseSlideFormat(s string) (SlideFormat, error) {
	switch f := SlideFormat(strings.ToLower(s)); f {
	case "":
		return SlidesYAML, nil
	case "md":
		return SlidesMarkdown, nil
	case "yml":
		return SlidesYAML, nil
	case SlidesYAML, SlidesJSON, SlidesMarkdown, SlidesHTML:
		return f, nil
	}
	return "", fmt.Errorf("%w: slide format %q", core.ErrUnknownFormat, s)
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderSlides writes the slide templates to out in the given format.
func RenderSlides(out io.Writer, deck project.Deck, format SlideFormat) error {
	switch format {
	case SlidesYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(deck); err != nil {
			return fmt.Errorf("failed to encode slides: %w", err)
		}
		return enc.Close()
	case SlidesJSON:
		data, err := json.MarshalIndent(deck, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode slides: %w", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case SlidesMarkdown:
		_, err := io.WriteString(out, SlidesMarkdownText(deck))
		return err
	case SlidesHTML:
		return renderHTML(out, deck)
	}
	return fmt.Errorf("%w: slide format %q", core.ErrUnknownFormat, format)
}

// SlidesMarkdownText renders the deck as one level-2 section per slide.
func SlidesMarkdownText(deck project.Deck) string {
	var b strings.Builder
	for i, s := range deck {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		for _, f := range s.Fields {
			fmt.Fprintf(&b, "- **%s**: %s\n", fieldLabel(f.Name), fieldValue(f.Value))
		}
	}
	return b.String()
}

func renderHTML(out io.Writer, deck project.Deck) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(SlidesMarkdownText(deck)), &body); err != nil {
		return fmt.Errorf("failed to convert slides to html: %w", err)
	}
	title := "Slides"
	if len(deck) > 0 {
		title = deck[0].Title
	}
	_, err := fmt.Fprintf(out,
		"<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), body.String())
	return err
}

// fieldLabel turns a field name like key_metric into "Key metric".
func fieldLabel(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func fieldValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}
