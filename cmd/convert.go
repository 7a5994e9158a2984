package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/colscore/config"
	"github.com/katalvlaran/colscore/distance"
	"github.com/katalvlaran/colscore/imageio"
	"github.com/katalvlaran/colscore/tsplib"
	"github.com/klauspost/compress/gzip"
)

const (
	// gzipSuffix on an output path selects a gzip-compressed stream.
	gzipSuffix = ".gz"

	// debugMatrixMax is the widest image whose distance matrix is dumped at
	// debug level.
	debugMatrixMax = 16
)

// convert runs load → column distances → instance → write. Every step that
// can fail on user input runs before the output is opened, so a failure
// never leaves partial output behind.
func convert(stdout io.Writer, log *slog.Logger, cfg *config.Config, imagePath string) error {
	img, err := imageio.Load(imagePath)
	if err != nil {
		return err
	}
	log.Info("image loaded", "path", imagePath, "width", img.Width(), "height", img.Height())

	dist, err := distance.Columns(img, cfg.Metric)
	if err != nil {
		return fmt.Errorf("column distances: %w", err)
	}
	log.Debug("column distances computed", "metric", cfg.Metric.String(), "cities", dist.Rows())
	if dist.Rows() <= debugMatrixMax && log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("column distance matrix", "matrix", dist.String())
	}

	inst, err := tsplib.NewColumnInstance(tsplib.ColumnName(cfg.NamePrefix, imagePath), dist)
	if err != nil {
		return fmt.Errorf("build instance: %w", err)
	}

	if err = writeInstance(stdout, cfg, inst); err != nil {
		return err
	}
	log.Info("instance written", "dimension", inst.Dimension(), "output", cfg.Output)

	return nil
}

// writeInstance sends inst to stdout or to cfg.Output. A file that could
// not be written completely is removed.
func writeInstance(stdout io.Writer, cfg *config.Config, inst *tsplib.Instance) error {
	if cfg.ToStdout() {
		return tsplib.Write(stdout, inst)
	}

	sink, err := createSink(cfg.Output)
	if err != nil {
		return err
	}
	werr := tsplib.Write(sink, inst)
	cerr := sink.Close()
	if err = errors.Join(werr, cerr); err != nil {
		_ = os.Remove(cfg.Output)
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	return nil
}

// fileSink closes the optional compressor before the file.
type fileSink struct {
	io.Writer
	gz   *gzip.Writer
	file *os.File
}

func (s *fileSink) Close() error {
	var gerr error
	if s.gz != nil {
		gerr = s.gz.Close()
	}

	return errors.Join(gerr, s.file.Close())
}

// createSink creates path, wrapping it in a gzip writer for ".gz" paths.
func createSink(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	if !strings.HasSuffix(path, gzipSuffix) {
		return &fileSink{Writer: f, file: f}, nil
	}
	gz := gzip.NewWriter(f)

	return &fileSink{Writer: gz, gz: gz, file: f}, nil
}
