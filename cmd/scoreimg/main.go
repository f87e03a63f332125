// Command scoreimg scores a finished drawing against a target image
// offline, and optionally writes a WebP map of the differing pixels.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"sketchmatch/internal/assets"
	"sketchmatch/internal/config"
	"sketchmatch/internal/score"
)

func main() {
	drawing := flag.String("drawing", "", "drawing image file (required)")
	target := flag.String("target", "", "embedded target name or image file (required)")
	size := flag.Int("size", 128, "canvas size in pixels")
	binarize := flag.Bool("binarize", true, "snap the target to ink/paper")
	ink := flag.String("ink", "#000000", "ink colour")
	paper := flag.String("paper", "#ffffff", "paper colour")
	diffPath := flag.String("diff", "", "write a WebP mismatch map to this file")
	flag.Parse()

	if *drawing == "" || *target == "" {
		flag.Usage()
		os.Exit(2)
	}

	inkRGB, err := config.ParseColor(*ink)
	if err != nil {
		log.Fatalf("ink: %v", err)
	}
	paperRGB, err := config.ParseColor(*paper)
	if err != nil {
		log.Fatalf("paper: %v", err)
	}

	opts := assets.Options{Width: *size, Height: *size, Channels: 4, Paper: paperRGB, Ink: inkRGB}
	canvas, err := assets.LoadFile(*drawing, opts)
	if err != nil {
		log.Fatal(err)
	}
	opts.Binarize = *binarize
	ref, err := assets.Load(*target, opts)
	if err != nil {
		log.Fatal(err)
	}

	match, err := score.Match(canvas, ref)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.4f\n", match)

	if *diffPath == "" {
		return
	}
	img, err := score.Diff(canvas, ref)
	if err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*diffPath)
	if err != nil {
		log.Fatalf("create %s: %v", *diffPath, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		log.Fatalf("encode %s: %v", *diffPath, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *diffPath, err)
	}
}
