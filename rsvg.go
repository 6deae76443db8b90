package svgpdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// rsvgBackend shells out to the rsvg-convert binary (librsvg). It is the
// last candidate for both output kinds.
type rsvgBackend struct {
	kind  Kind
	avail bool
}

func (b *rsvgBackend) Name() string { return "rsvg" }

func (b *rsvgBackend) Available() bool { return b.avail }

func (b *rsvgBackend) Render(ctx context.Context, req Request, outPath string) error {
	args := []string{"--format=" + b.kind.String()}
	if b.kind == KindPNG {
		dpi := req.dpi()
		args = append(args,
			fmt.Sprintf("--dpi-x=%d", dpi),
			fmt.Sprintf("--dpi-y=%d", dpi),
		)
	}
	args = append(args, "--output", outPath, req.SourcePath)

	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return &BackendError{Backend: b.Name(), Op: "run rsvg-convert", Err: err}
	}
	return nil
}
