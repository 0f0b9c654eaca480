package hashimecli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signatory-io/hashime/core"
	"github.com/signatory-io/hashime/crypto"
	"github.com/signatory-io/hashime/logger"
	"github.com/signatory-io/hashime/randomart"
	"github.com/signatory-io/hashime/ui"
)

type renderRequest struct {
	conf   *core.Config
	name   string
	top    string
	bottom string
	color  bool
	log    logger.Logger
}

// render hashes r and builds the complete output in memory
func (q *renderRequest) render(r io.Reader) ([]byte, error) {
	log := q.log
	if log == nil {
		log = logger.Nop
	}
	h := crypto.HashFromString(q.conf.HashFunction)
	if h == nil {
		return nil, fmt.Errorf("unknown hash function %s", q.conf.HashFunction)
	}
	alg, err := randomart.New(q.conf.Algorithm, q.conf.Options())
	if err != nil {
		return nil, err
	}

	digest, err := crypto.Sum(h, r)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]any{
		"hash":   h.Name(),
		"size":   len(digest),
		"source": q.name,
	}).Debugf("digest computed")

	lines, err := alg.Art(digest)
	if err != nil {
		return nil, err
	}
	log.With("algorithm", alg.Name()).Debugf("art rendered")

	if q.conf.Format != "text" {
		form := q.conf.Digest
		if form == "" {
			form = "hex"
		}
		enc, err := encodeDigest(form, digest)
		if err != nil {
			return nil, err
		}
		return encodeResult(q.conf.Format, &Result{
			Name:      q.name,
			Algorithm: alg.Name(),
			Hash:      h.Name(),
			Digest:    enc,
			Art:       lines,
		})
	}

	if q.color {
		var palette string
		if alg.Name() == randomart.DrunkenBishopName {
			palette = q.conf.Palette
		}
		lines = ui.NewColorizer(ui.NewRenderer(io.Discard, true), palette).Lines(lines)
	}

	var out bytes.Buffer
	if q.conf.NoFrame {
		out.WriteString(strings.Join(lines, "\n"))
	} else {
		frame, err := randomart.ParseFrame(q.conf.Frame)
		if err != nil {
			return nil, err
		}
		out.WriteString(frame.Apply(lines, q.top, q.bottom))
	}
	out.WriteRune('\n')

	if q.conf.Digest != "" {
		enc, err := encodeDigest(q.conf.Digest, digest)
		if err != nil {
			return nil, err
		}
		// as typed by the user
		fmt.Fprintf(&out, "%s: %s\n", q.conf.HashFunction, enc)
	}
	return out.Bytes(), nil
}
