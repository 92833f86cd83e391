package scan

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"imgresize/scale"

	"github.com/alecthomas/kong"
)

// CLICmd reports what a resize run would produce without writing anything.
type CLICmd struct {
	Source string  `help:"Source folder to scan" default:"images" env:"IMGRESIZE_SOURCE"`
	Scale  float64 `help:"Uniform scale factor applied to width and height" default:"2.0" env:"IMGRESIZE_SCALE"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	srcDir, err := filepath.Abs(c.Source)
	if err != nil {
		return fmt.Errorf("invalid source path %q: %w", c.Source, err)
	}
	c.Source = srcDir

	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) || c.Scale <= 0 {
		return fmt.Errorf("invalid scale: %v", c.Scale)
	}
	return nil
}

func (c *CLICmd) Run() error {
	files, err := FindImages(c.Source)
	if err != nil {
		return err
	}

	var okCount, errCount int
	for _, name := range files {
		logger := slog.Default().With("file", name)

		w, h, err := readSize(name)
		if err != nil {
			errCount++
			logger.Error("could not read image", "error", err)
			continue
		}

		tw, th, err := scale.TargetSize(w, h, c.Scale)
		if err != nil {
			errCount++
			logger.Error("invalid target size", "width", w, "height", h, "error", err)
			continue
		}

		okCount++
		logger.Info("planned", "width", w, "height", h, "target_width", tw, "target_height", th)
	}

	slog.Info("stats", "ok", okCount, "errors", errCount, "total", okCount+errCount)

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}

func readSize(name string) (int, int, error) {
	img, err := os.Open(name)
	if err != nil {
		return 0, 0, fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if close_err := img.Close(); close_err != nil {
			slog.Error("could not close image", "file", name, "error", close_err)
		}
	}()

	imgConf, _, err := image.DecodeConfig(img)
	if err != nil {
		return 0, 0, fmt.Errorf("could not decode image header: %w", err)
	}
	return imgConf.Width, imgConf.Height, nil
}
