// Command hedra renders, inspects and collides 2D shapes described in scene
// files.
//
// Scene files are YAML (see package scene), SVG (<polygon> and <rect>
// elements) or .txt point lists: newline separated "x y" points, with each
// shape separated by an extra newline.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app      = kingpin.New("hedra", "2D polygon geometry toolkit.")
	logLevel = app.Flag("log-level", "Log level (debug, info, warn, error).").Default("info").Enum("debug", "info", "warn", "error")
	noColor  = app.Flag("no-color", "Disable colored output.").Bool()

	renderCmd    = app.Command("render", "Render scenes to PNG with gizmos.")
	renderScale  = renderCmd.Flag("scale", "Pixels per world unit.").Short('s').Default("50").Float64()
	renderSize   = renderCmd.Flag("size", "Gizmo marker size in world units.").Default("0.2").Float64()
	renderData   = renderCmd.Flag("data", "Draw derived data: normals, centers, heights.").Short('d').Bool()
	renderOut    = renderCmd.Flag("out", "Output directory.").Short('o').Default(".").String()
	renderShow   = renderCmd.Flag("show", "Print the images inline (iTerm).").Bool()
	renderScenes = renderCmd.Arg("scene", "Scene files.").Required().ExistingFiles()

	inspectCmd   = app.Command("inspect", "Print the derived data of every shape in a scene.")
	inspectDump  = inspectCmd.Flag("dump", "Dump the raw shape values.").Bool()
	inspectScene = inspectCmd.Arg("scene", "Scene file.").Required().ExistingFile()

	collideCmd   = app.Command("collide", "Report overlapping shapes and the offsets that separate them.")
	collideMask  = collideCmd.Flag("mask", "Layer mask to query.").Default("4294967295").Uint32()
	collideScene = collideCmd.Arg("scene", "Scene file.").Required().ExistingFile()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hedra: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	au := aurora.NewAurora(!*noColor)
	ctx := context.Background()

	switch command {
	case renderCmd.FullCommand():
		err = render(ctx, logger, renderOptions{
			scale:  *renderScale,
			size:   *renderSize,
			data:   *renderData,
			outDir: *renderOut,
			show:   *renderShow,
		}, *renderScenes)
	case inspectCmd.FullCommand():
		err = inspect(os.Stdout, au, *inspectScene, *inspectDump)
	case collideCmd.FullCommand():
		err = collide(os.Stdout, au, *collideScene, *collideMask)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		os.Exit(1)
	}
}
