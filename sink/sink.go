package sink

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Ext is appended to every written name.
const Ext = ".jpg"

type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Clean makes sure destDir exists and holds no files. Subdirectories are
// left in place, only their files are removed.
func Clean(destDir string) error {
	info, err := os.Stat(destDir)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return &IOError{Op: "create destination folder", Path: destDir, Err: err}
		}
		return nil
	}
	if err != nil {
		return &IOError{Op: "stat destination folder", Path: destDir, Err: err}
	}
	if !info.IsDir() {
		return &IOError{Op: "clean destination folder", Path: destDir, Err: fmt.Errorf("not a directory")}
	}

	return filepath.WalkDir(destDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &IOError{Op: "walk destination folder", Path: path, Err: err}
		}
		if d.IsDir() {
			return nil
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &IOError{Op: "remove file", Path: path, Err: err}
		}
		return nil
	})
}

// Write stores data as destDir/name.jpg, replacing any existing file, and
// returns the final path.
func Write(destDir, name string, data []byte) (dest string, err error) {
	destName := name + Ext
	dest = filepath.Join(destDir, destName)

	outFile, err := os.CreateTemp(destDir, "."+destName+"-*")
	if err != nil {
		return "", &IOError{Op: "create temporary destination", Path: dest, Err: err}
	}
	canRename := false
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = &IOError{Op: "close temporary destination", Path: dest, Err: defErr}
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
				err = &IOError{Op: "rename destination file", Path: dest, Err: defErr}
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
			dest = ""
		}
	}()

	if _, err = outFile.Write(data); err != nil {
		return "", &IOError{Op: "write destination", Path: dest, Err: err}
	}
	if err = outFile.Sync(); err != nil {
		return "", &IOError{Op: "flush destination", Path: dest, Err: err}
	}

	canRename = true
	return dest, nil
}

// EncodeJPEG writes img as JPEG. Quality outside 1..100 means
// jpeg.DefaultQuality. JPEG has no alpha; transparent pixels come out black.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("could not encode JPEG: %w", err)
	}
	return nil
}
