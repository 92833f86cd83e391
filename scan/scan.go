package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Extensions lists the matched image extensions in the order their
// groups appear in FindImages results. Matching is case-sensitive.
var Extensions = []string{".png", ".jpg", ".jpeg"}

type NotFoundError struct {
	Dir string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source directory %q not found: %v", e.Dir, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// FindImages returns every file under srcDir with a matched extension:
// all .png files first, then .jpg, then .jpeg.
func FindImages(srcDir string) ([]string, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Dir: srcDir, Err: err}
		}
		return nil, fmt.Errorf("cannot stat source directory %q: %w", srcDir, err)
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Dir: srcDir, Err: fmt.Errorf("not a directory")}
	}

	groups := make(map[string][]string, len(Extensions))
	for _, ext := range Extensions {
		groups[ext] = nil
	}

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if group, ok := groups[ext]; ok {
			groups[ext] = append(group, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk folder %q: %w", srcDir, err)
	}

	var files []string
	for _, ext := range Extensions {
		files = append(files, groups[ext]...)
	}
	return files, nil
}
