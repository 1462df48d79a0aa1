package artifact

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GenerateVariants renders the configured slow-speed copies of a recording
// with ffmpeg. Pitch-preserving rubberband is tried first; builds without
// the filter fall back to atempo. Failures only cost the slow copies, so
// they are logged rather than returned.
func (s *Store) GenerateVariants(ctx context.Context, number int64) {
	if !s.variants.Enabled || len(s.variants.Speeds) == 0 {
		return
	}

	base := s.BasePath(number)

	g, ctx := errgroup.WithContext(ctx)
	for _, speed := range s.variants.Speeds {
		g.Go(func() error {
			return s.renderVariant(ctx, base, number, speed)
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Warn("failed to generate speed variants",
			zap.Int64("number", number),
			zap.Error(err))
	}
}

func (s *Store) renderVariant(ctx context.Context, base string, number int64, speed float64) error {
	out := s.VariantPath(number, speed)
	tempo := strconv.FormatFloat(speed, 'g', -1, 64)

	rubberband := fmt.Sprintf("rubberband=tempo=%s", tempo)
	if err := runFFmpeg(ctx, base, rubberband, out); err == nil {
		return nil
	}

	atempo := fmt.Sprintf("atempo=%s", tempo)
	if err := runFFmpeg(ctx, base, atempo, out); err != nil {
		return fmt.Errorf("speed %s: %w", tempo, err)
	}
	return nil
}

func runFFmpeg(ctx context.Context, in, filter, out string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-loglevel", "error",
		"-i", in,
		"-filter:a", filter,
		out,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, output)
	}
	return nil
}
