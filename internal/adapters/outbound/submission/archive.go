package submission

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// extractTeamZip unpacks TEAM.zip into extractedRoot/TEAM and returns the
// team directory. Archives that wrap everything in a TEAM/ folder resolve to
// that inner folder. An existing extraction is reused.
func extractTeamZip(zipPath, extractedRoot string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(zipPath), filepath.Ext(zipPath))
	dest := filepath.Join(extractedRoot, base)

	if !isDir(dest) {
		if err := unzip(zipPath, dest); err != nil {
			_ = os.RemoveAll(dest)
			return "", err
		}
	}

	inner := filepath.Join(dest, base)
	if isDir(inner) {
		return inner, nil
	}
	return dest, nil
}

func unzip(zipPath, dest string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filepath.Base(zipPath), err)
	}
	defer r.Close()

	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, f := range r.File {
		if err := extractFile(f, dest); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	target := filepath.Join(dest, filepath.FromSlash(f.Name))
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("entry escapes archive root")
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
