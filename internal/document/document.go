// Package document is the file-backed document provider: it loads
// Markdown files, fingerprints their content, and applies replacement
// text in place.
package document

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"

	"github.com/zeebo/blake3"
)

// Doc is a loaded file plus the metadata needed to rewrite it.
type Doc struct {
	Path string
	Body string
	Mode fs.FileMode
}

// Load reads the file at path, retaining its mode for rewrite.
func Load(path string) (Doc, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Doc{}, err
	}
	if info.IsDir() {
		return Doc{}, fmt.Errorf("%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, err
	}
	return Doc{Path: path, Body: string(data), Mode: info.Mode().Perm()}, nil
}

// Fingerprint returns a deterministic BLAKE3 digest of the body.
// Two documents with equal content always share a fingerprint.
func Fingerprint(body string) string {
	sum := blake3.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// ShortFingerprint is the truncated form used in status output.
func ShortFingerprint(body string) string {
	return Fingerprint(body)[:12]
}

// Replace writes text over the document's file, preserving its mode.
// With backup set, the previous content is kept next to the file as
// <path>.bak before the rewrite.
func Replace(d Doc, text string, backup bool) error {
	if backup {
		if err := os.WriteFile(d.Path+".bak", []byte(d.Body), d.Mode); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	}
	if err := os.WriteFile(d.Path, []byte(text), d.Mode); err != nil {
		return fmt.Errorf("write %s: %w", d.Path, err)
	}
	return nil
}
