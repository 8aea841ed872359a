package documents

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"amharic.dev/analyzer/api/core"
)

// Extractor turns uploaded files into plain text. Output is NFC-normalized
// so that precomposed and decomposed input analyze the same.
type Extractor struct{}

func (Extractor) Extract(kind core.DocumentType, content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", core.ErrMalformedDocument)
	}

	var (
		text string
		err  error
	)
	switch kind {
	case core.DocumentText:
		text = string(content)
	case core.DocumentHTML:
		text, err = extractHTML(content)
	case core.DocumentXML:
		text, err = extractXML(content)
	default:
		return "", fmt.Errorf("%w: unsupported document type %q", core.ErrBadArguments, kind)
	}
	if err != nil {
		return "", err
	}
	return norm.NFC.String(text), nil
}

// extractHTML returns the visible text, one space between text nodes.
// Scripts, styles and comments are dropped.
func extractHTML(content []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrMalformedDocument, err)
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(parts, " "), nil
}

// extractXML returns the character data of the root element and its
// descendants, one space between chunks. The input must be a well-formed
// document with exactly one root element.
func extractXML(content []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var parts []string
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", core.ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return "", fmt.Errorf("%w: more than one root element", core.ErrMalformedDocument)
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			s := strings.TrimSpace(string(t))
			if s == "" {
				continue
			}
			if depth == 0 {
				return "", fmt.Errorf("%w: text outside the root element", core.ErrMalformedDocument)
			}
			parts = append(parts, s)
		}
	}
	if roots == 0 {
		return "", fmt.Errorf("%w: no root element", core.ErrMalformedDocument)
	}
	return strings.Join(parts, " "), nil
}
