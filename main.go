package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arnovandash/go-raytracer/pkg/loaders"
	"github.com/arnovandash/go-raytracer/pkg/renderer"
)

// Config holds all the configuration for the raytracer.
type Config struct {
	Scene      string
	Output     string
	MaxDepth   int
	Super      int
	Flat       bool
	DOFFrames  int
	Aperture   float64
	Help       bool
	CPUProfile string
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Println("Starting raytracer...")
	startTime := time.Now()

	sceneObj, err := loaders.LoadScene(config.Scene)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	if config.MaxDepth > 0 {
		sceneObj.MaxDepth = config.MaxDepth
	}
	if config.Super > 0 {
		sceneObj.Super = config.Super
	}

	pipeline := renderer.NewPipeline(sceneObj, renderer.NewDefaultLogger())
	pipeline.Flat = config.Flat

	var buf []uint32
	if config.DOFFrames > 1 {
		fmt.Printf("Rendering %d depth-of-field sub-frames at aperture %.3f...\n", config.DOFFrames, config.Aperture)
		buf = pipeline.RenderDOF(config.DOFFrames, config.Aperture)
	} else {
		buf = pipeline.Render()
	}

	renderTime := time.Since(startTime)

	outputDir := filepath.Dir(config.Output)
	if outputDir != "." && outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	if err := loaders.SaveImage(config.Output, buf, sceneObj.Width, sceneObj.Height); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	printStats(pipeline.Stats, renderTime)
	fmt.Printf("Render saved as %s\n", config.Output)
}

// printStats reports ray counts with locale-aware thousands separators.
func printStats(stats *renderer.RenderStats, renderTime time.Duration) {
	p := message.NewPrinter(language.English)
	s := stats.Snapshot()
	p.Printf("Render completed in %v\n", renderTime)
	p.Printf("Primary rays: %d, reflection: %d, refraction: %d, shadow: %d\n",
		s.PrimaryRays, s.ReflectionRays, s.RefractionRays, s.ShadowRays)
	p.Printf("Intersection tests: %d, total rays: %d\n", s.IntersectionTests, s.TotalRays)
}

// newFlagSet builds the flag set for config, shared between parseFlags and
// showHelp so the two never drift apart.
func newFlagSet(config *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("go-raytracer", flag.ExitOnError)
	fs.StringVar(&config.Scene, "scene", "", "Path to a YAML scene file (required)")
	fs.StringVar(&config.Output, "out", "output/render.png", "Output image path (.png, .ppm, .webp or .tga)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Recursion depth for reflection/refraction (0 = use scene default)")
	fs.IntVar(&config.Super, "super", 0, "Samples per pixel (0 = use scene default)")
	fs.BoolVar(&config.Flat, "flat", false, "Preview mode: base shading only, no reflection or refraction")
	fs.IntVar(&config.DOFFrames, "dof-frames", 0, "Depth-of-field sub-frames to orbit and blend (0 or 1 disables)")
	fs.Float64Var(&config.Aperture, "aperture", 0.1, "Depth-of-field orbit radius")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	fs.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	return fs
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	fs := newFlagSet(&config)
	fs.Parse(os.Args[1:])
	if config.Scene == "" && !config.Help {
		fmt.Println("Error: --scene is required")
		fs.Usage()
		os.Exit(1)
	}
	return config
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("go-raytracer")
	fmt.Println("Usage: go-raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	newFlagSet(&Config{}).PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  go-raytracer --scene=scenes/cornell.yaml --out=output/cornell.png")
	fmt.Println("  go-raytracer --scene=scenes/cornell.yaml --super=4 --depth=6")
	fmt.Println("  go-raytracer --scene=scenes/cornell.yaml --dof-frames=16 --aperture=0.15")
	fmt.Println("  go-raytracer --scene=scenes/cornell.yaml --flat --out=output/preview.png")
}
