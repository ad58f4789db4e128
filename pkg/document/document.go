package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/slotkit/internal/errors"
	"github.com/vango-dev/slotkit/pkg/layout"
	"github.com/vango-dev/slotkit/pkg/vdom"
)

// Syntax is the source syntax of a document file.
type Syntax string

const (
	SyntaxYAML     Syntax = "yaml"
	SyntaxMarkdown Syntax = "markdown"
)

// Format is the content format of a section.
type Format string

const (
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Section is one block of content destined for a layout region.
type Section struct {
	Region  string `yaml:"region"`
	Format  Format `yaml:"format,omitempty"`
	Content string `yaml:"content"`
}

// Document is a parsed page document.
type Document struct {
	Title    string    `yaml:"title"`
	Lang     string    `yaml:"lang,omitempty"`
	Sections []Section `yaml:"sections"`

	// Path is the file the document was loaded from, if any.
	Path string `yaml:"-"`
}

// SyntaxFromPath picks the syntax for a file by its extension.
func SyntaxFromPath(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SyntaxYAML, nil
	case ".md", ".markdown":
		return SyntaxMarkdown, nil
	default:
		return "", errors.New("E303").
			WithDetailf("%q has no recognized extension", filepath.Base(path)).
			WithLocation(path, 0)
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	syntax, err := SyntaxFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E301").Wrap(err).WithLocation(path, 0)
	}

	doc, err := Parse(data, syntax)
	if err != nil {
		return nil, errors.FromError(err, "E302").WithLocation(path, 0)
	}
	doc.Path = path
	return doc, nil
}

// Parse parses document source in the given syntax.
func Parse(data []byte, syntax Syntax) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch syntax {
	case SyntaxYAML:
		doc, err = parseYAML(data)
	case SyntaxMarkdown:
		doc, err = parseMarkdown(data)
	default:
		return nil, errors.New("E303").WithDetailf("unknown document syntax %q", syntax)
	}
	if err != nil {
		return nil, err
	}

	if err := doc.normalize(); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseYAML(data []byte) (*Document, error) {
	doc := &Document{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && err != io.EOF {
		return nil, errors.New("E302").Wrap(err)
	}
	return doc, nil
}

type frontMatter struct {
	Title  string `yaml:"title"`
	Lang   string `yaml:"lang"`
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
}

func parseMarkdown(data []byte) (*Document, error) {
	var meta frontMatter

	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, errors.New("E302").Wrap(fmt.Errorf("parse frontmatter: %w", err))
	}

	doc := &Document{Title: meta.Title, Lang: meta.Lang}
	add := func(region, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		doc.Sections = append(doc.Sections, Section{
			Region:  region,
			Format:  FormatMarkdown,
			Content: content,
		})
	}
	add(layout.RegionHeader.String(), meta.Header)
	add(layout.RegionBody.String(), string(body))
	add(layout.RegionFooter.String(), meta.Footer)

	return doc, nil
}

// normalize defaults empty formats to text and rejects unknown ones.
func (d *Document) normalize() error {
	for i := range d.Sections {
		s := &d.Sections[i]
		s.Region = strings.ToLower(strings.TrimSpace(s.Region))
		switch s.Format {
		case "":
			s.Format = FormatText
		case FormatText, FormatHTML, FormatMarkdown:
		default:
			return errors.New("E303").
				WithDetailf("section %d has unknown format %q", i+1, s.Format)
		}
	}
	return nil
}

// Children converts the sections to page layout children, in document
// order. A section whose region is not a page region becomes an untagged
// element, which the layout drops.
func (d *Document) Children() ([]*vdom.VNode, error) {
	children := make([]*vdom.VNode, 0, len(d.Sections))
	for i, s := range d.Sections {
		content, err := s.node()
		if err != nil {
			return nil, errors.New("E302").
				Wrap(err).
				WithDetailf("section %d (%s): %v", i+1, s.Region, err)
		}

		region, ok := layout.ParseRegion(s.Region)
		if !ok {
			children = append(children, vdom.Div(vdom.Data("region", s.Region), content))
			continue
		}
		children = append(children, layout.PageRegions.Fill(region, content))
	}
	return children, nil
}

// Render resolves the document through page.
func (d *Document) Render(ctx context.Context, page *layout.Page) (*vdom.VNode, error) {
	children, err := d.Children()
	if err != nil {
		return nil, err
	}
	return page.Render(ctx, children)
}

func (s Section) node() (*vdom.VNode, error) {
	switch s.Format {
	case FormatHTML:
		return vdom.Raw(s.Content), nil
	case FormatMarkdown:
		html, err := Markdown([]byte(s.Content))
		if err != nil {
			return nil, err
		}
		return vdom.Raw(html), nil
	default:
		return vdom.Text(s.Content), nil
	}
}
