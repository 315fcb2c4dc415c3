// Package render writes revised documents to disk formats.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

const (
	documentStart = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentEnd = `</w:body></w:document>`
)

// Docx lays out plain text as a DOCX package, one paragraph per line. The
// first non-empty line is styled as the name and short all-caps lines as
// section headings.
func Docx(text string) ([]byte, error) {
	body, err := documentXML(text)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	writer := zip.NewWriter(&out)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", body},
	}
	for _, part := range parts {
		if err := writeZipFile(writer, part.name, []byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func documentXML(text string) (string, error) {
	var b strings.Builder
	b.WriteString(documentStart)

	seenName := false
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		style := StyleMap["body"]
		switch {
		case line == "":
		case !seenName:
			style = StyleMap["name"]
			seenName = true
		case isHeading(line):
			style = StyleMap["sectionHeading"]
		}
		if err := writeParagraph(&b, line, style); err != nil {
			return "", err
		}
	}

	b.WriteString(documentEnd)
	return b.String(), nil
}

func writeParagraph(b *strings.Builder, line string, style RunStyle) error {
	b.WriteString("<w:p>")
	if line != "" {
		b.WriteString("<w:r>")
		writeRunProperties(b, style)
		for i, segment := range strings.Split(line, "\t") {
			if i > 0 {
				b.WriteString("<w:tab/>")
			}
			if segment == "" {
				continue
			}
			b.WriteString(`<w:t xml:space="preserve">`)
			if err := xml.EscapeText(b, []byte(segment)); err != nil {
				return err
			}
			b.WriteString("</w:t>")
		}
		b.WriteString("</w:r>")
	}
	b.WriteString("</w:p>")
	return nil
}

func writeRunProperties(b *strings.Builder, style RunStyle) {
	if style == (RunStyle{}) {
		return
	}
	b.WriteString("<w:rPr>")
	if style.Bold {
		b.WriteString("<w:b/>")
	}
	if style.Italic {
		b.WriteString("<w:i/>")
	}
	if style.Color != "" {
		fmt.Fprintf(b, `<w:color w:val="%s"/>`, style.Color)
	}
	if style.Size > 0 {
		fmt.Fprintf(b, `<w:sz w:val="%d"/>`, style.Size)
	}
	b.WriteString("</w:rPr>")
}

// isHeading reports short lines with letters, all upper case.
func isHeading(line string) bool {
	if len([]rune(line)) > 40 {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func writeZipFile(writer *zip.Writer, name string, content []byte) error {
	dst, err := writer.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	_, err = dst.Write(content)
	return err
}
