package corpus

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// OOXML packages (.docx, .pptx) are ZIP archives of XML parts. Text lives in
// <w:t> nodes for WordprocessingML and <a:t> nodes for DrawingML; both may
// carry attributes such as xml:space="preserve".
var (
	wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
	atTag = regexp.MustCompile(`<a:t[^>]*>([^<]*)</a:t>`)
)

// Well-known part names inside OOXML packages.
const (
	contentTypesPath    = "[Content_Types].xml"
	docxDocumentXMLPath = "word/document.xml"
	pptxSlidePathPrefix = "ppt/slides/slide"
)

// docxMainContentType identifies the main document part of a .docx package
// in [Content_Types].xml.
const docxMainContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"

// partNameRe and partNameRe2 pull the main document's PartName out of an
// Override element, covering both attribute orders.
var (
	partNameRe  = regexp.MustCompile(`<Override[^>]+PartName="([^"]+)"[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"`)
	partNameRe2 = regexp.MustCompile(`<Override[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"[^>]+PartName="([^"]+)"`)
)

// readZipMember returns the contents of the named file inside the archive,
// or nil if the file is not present.
func readZipMember(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		_ = rc.Close()
		return buf.Bytes(), nil
	}
	return nil, nil
}

// joinTagText appends the trimmed first-group text of each regex match,
// separated by single spaces.
func joinTagText(b *strings.Builder, parts [][]string) {
	for _, p := range parts {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimSpace(p[1]))
	}
}

// findDocxMainDocumentPath resolves the main document part declared in
// [Content_Types].xml, stripped of its leading slash. It returns "" when the
// declaration is missing or unreadable.
func findDocxMainDocumentPath(zr *zip.Reader) string {
	content, err := readZipMember(zr, contentTypesPath)
	if err != nil || content == nil {
		return ""
	}
	for _, re := range []*regexp.Regexp{partNameRe, partNameRe2} {
		if m := re.FindStringSubmatch(string(content)); len(m) > 1 {
			return strings.TrimPrefix(m[1], "/")
		}
	}
	return ""
}

// extractDOCX extracts text from .docx bytes by collecting every <w:t> text
// node from the main document part, so content is searchable regardless of
// paragraph or run attributes.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract DOCX: not a zip: %w", err)
	}

	docPath := findDocxMainDocumentPath(zr)
	if docPath == "" {
		docPath = docxDocumentXMLPath
	}

	docXML, err := readZipMember(zr, docPath)
	if err != nil {
		return "", fmt.Errorf("extract DOCX: %w", err)
	}
	if docXML == nil {
		return "", fmt.Errorf("extract DOCX: %s not found", docPath)
	}

	var b strings.Builder
	joinTagText(&b, wtTag.FindAllStringSubmatch(string(docXML), -1))
	return strings.TrimSpace(b.String()), nil
}

// extractPPTX extracts text from .pptx bytes by collecting every <a:t> text
// node from each slide.
func extractPPTX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract PPTX: not a zip: %w", err)
	}
	var b strings.Builder
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, pptxSlidePathPrefix) || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		slideXML, err := readZipMember(zr, f.Name)
		if err != nil {
			return "", fmt.Errorf("extract PPTX: %w", err)
		}
		joinTagText(&b, atTag.FindAllStringSubmatch(string(slideXML), -1))
	}
	return strings.TrimSpace(b.String()), nil
}
