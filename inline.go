package mdpaper

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// imageRefPattern matches Markdown image references to local relative paths
// with a supported image extension: ![alt](./path/to/image.png).
// Only `./`-prefixed paths are considered local; URLs, absolute paths and
// bare names pass through untouched.
var imageRefPattern = regexp.MustCompile(`!\[([^\]]*)\]\((\./[^)\s]+\.(?i:png|jpe?g|gif|svg))\)`)

// imageInliner abstracts the image embedding pass over raw Markdown.
type imageInliner interface {
	Inline(content, baseDir string) string
}

// dataURIInliner replaces local image references with base64 data URIs so
// the rendered HTML has no external file dependencies.
type dataURIInliner struct{}

// Inline rewrites every matching image reference in content. The relative
// path is resolved against baseDir, the file's bytes are embedded as a data
// URI tagged with the image's media type. A reference whose file cannot be
// read is left byte-identical; a single bad image never aborts the document.
// Every reference is read independently, even repeated paths.
func (dataURIInliner) Inline(content, baseDir string) string {
	return imageRefPattern.ReplaceAllStringFunc(content, func(ref string) string {
		m := imageRefPattern.FindStringSubmatch(ref)
		if m == nil {
			return ref
		}
		alt, rel := m[1], m[2]

		data, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(rel))) // #nosec G304 -- path comes from the document being converted
		if err != nil {
			return ref
		}

		encoded := base64.StdEncoding.EncodeToString(data)
		return fmt.Sprintf("![%s](data:%s;base64,%s)", alt, mediaType(rel, data), encoded)
	})
}

// mediaType determines the media type for an inlined image. Content sniffing
// wins when it identifies an image; otherwise the file extension decides,
// with jpg aliased to the jpeg media type.
func mediaType(path string, data []byte) string {
	if mt := mimetype.Detect(data); strings.HasPrefix(mt.String(), "image/") {
		// Drop parameters such as "; charset=utf-8"; data URIs carry the bare type.
		bare, _, _ := strings.Cut(mt.String(), ";")
		return strings.TrimSpace(bare)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	default:
		return "image/" + strings.TrimPrefix(ext, ".")
	}
}
