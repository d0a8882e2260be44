package e2e

import (
	"archive/zip"
	"bytes"

	"github.com/xuri/excelize/v2"
)

// FixtureExtensions lists the file extensions exercised by the file-based
// tests: plain text (.txt, .md, .rst), OOXML (.docx, .xlsx, .pptx), and
// OpenDocument (.odp, .ods). The corpus extractor also handles .pdf, .odt,
// and .rtf; PDF is skipped here (no minimal PDF with extractable text) and
// .odt/.rtf share the OpenDocument and plain-text paths already covered.
var FixtureExtensions = []string{
	".txt", ".md", ".rst",
	".docx", ".xlsx", ".pptx", ".odp", ".ods",
}

// MinimalFileContent returns file bytes of the given extension carrying the
// given text. Plain types get the raw text; binary types get a minimal
// container the corpus extractor can parse. Texts must not contain XML
// metacharacters (&, <, >), the builders do not escape.
func MinimalFileContent(ext, text string) []byte {
	switch ext {
	case ".docx":
		return singleEntryZip("word/document.xml",
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>`+text+`</w:t></w:r></w:p></w:body></w:document>`)
	case ".pptx":
		return singleEntryZip("ppt/slides/slide1.xml",
			`<p:sld xmlns:p="a" xmlns:a="b"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>`+text+`</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`)
	case ".odp":
		return singleEntryZip("content.xml",
			`<office:document><office:body><draw:page><draw:text-box><text:p>`+text+`</text:p></draw:text-box></draw:page></office:body></office:document>`)
	case ".ods":
		return singleEntryZip("content.xml",
			`<office:document><office:body><table:table><table:table-row><table:table-cell><text:p>`+text+`</text:p></table:table-cell></table:table-row></table:table></office:body></office:document>`)
	case ".xlsx":
		return minimalXlsx(text)
	default:
		return []byte(text)
	}
}

// singleEntryZip packs one named part into an in-memory zip archive.
func singleEntryZip(name, body string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create(name)
	_, _ = fw.Write([]byte(body))
	_ = w.Close()
	return buf.Bytes()
}

func minimalXlsx(text string) []byte {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", text)
	var buf bytes.Buffer
	_, _ = f.WriteTo(&buf)
	return buf.Bytes()
}
