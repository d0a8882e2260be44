package corpus

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// odContentPath is the path to the main content inside OpenDocument archives
// (.odt, .odp, .ods).
const odContentPath = "content.xml"

// OpenDocument text elements, with optional attributes. Separate patterns so
// opening and closing tags match (e.g. <text:p>...</text:p> only).
var (
	odTextP    = regexp.MustCompile(`<text:p[^>]*>([^<]*)</text:p>`)
	odTextSpan = regexp.MustCompile(`<text:span[^>]*>([^<]*)</text:span>`)
	odTextH    = regexp.MustCompile(`<text:h[^>]*>([^<]*)</text:h>`)
)

// extractOpenDocument extracts text from OpenDocument bytes (.odt, .odp, .ods).
// All are ZIP archives with a content.xml; text is collected from text:p,
// text:span, and text:h elements so content is searchable.
func extractOpenDocument(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract OpenDocument: not a zip: %w", err)
	}
	contentXML, err := readZipMember(zr, odContentPath)
	if err != nil {
		return "", fmt.Errorf("extract OpenDocument: %w", err)
	}
	if contentXML == nil {
		return "", fmt.Errorf("extract OpenDocument: %s not found", odContentPath)
	}
	s := string(contentXML)
	var b strings.Builder
	joinTagText(&b, odTextP.FindAllStringSubmatch(s, -1))
	joinTagText(&b, odTextSpan.FindAllStringSubmatch(s, -1))
	joinTagText(&b, odTextH.FindAllStringSubmatch(s, -1))
	return strings.TrimSpace(b.String()), nil
}
