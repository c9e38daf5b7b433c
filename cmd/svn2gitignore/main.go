package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/eriseven/svn-git-ignore-converter/engine"
	"github.com/eriseven/svn-git-ignore-converter/engine/logging"
	"github.com/eriseven/svn-git-ignore-converter/svn"
)

var cli struct {
	logging.LogConfig

	Convert convertCmd `cmd:"" help:"Convert svn:ignore properties to gitignore rules."`
}

type convertCmd struct {
	Path       string `arg:"" type:"existingdir" help:"Subversion working copy to convert."`
	Recursive  bool   `short:"r" help:"Collect properties from subdirectories too."`
	OutputFile string `short:"o" default:".gitignore" help:"File to write the converted rules to."`
	MaxDepth   int    `help:"Deepest directory level to visit, 0 for unlimited."`
	Threads    int    `default:"1" help:"Parallel property queries, at most ${max_threads}."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("svn2gitignore"),
		kong.Description("Convert the svn:ignore properties of a Subversion working copy into a .gitignore file."),
		kong.Vars{"max_threads": fmt.Sprintf("%d", engine.MaxThreads)},
	)
	logger := logging.NewLogger(cli.LogConfig)
	kctx.FatalIfErrorf(kctx.Run(logger))
}

func (c *convertCmd) Run(log *logging.Logger) error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("--max-depth must be zero or positive, got %d", c.MaxDepth)
	}
	if c.Threads < 1 {
		return fmt.Errorf("--threads must be positive, got %d", c.Threads)
	}
	client := svn.NewCLI(log)
	if err := client.Available(); err != nil {
		return err
	}
	eng, err := engine.New(log, client, c.Path, engine.Config{
		Recursive: c.Recursive,
		MaxDepth:  c.MaxDepth,
		Threads:   c.Threads,
	})
	if err != nil {
		return err
	}
	log.Infof("Converting svn:ignore properties under %s", c.Path)
	if c.Recursive {
		log.Debugf("Recursing into subdirectories")
		if c.MaxDepth > 0 {
			log.Debugf("Visiting at most %d directory levels", c.MaxDepth)
		}
	}
	entries := eng.Entries()
	if len(entries) == 0 {
		log.Warnf("No svn:ignore properties found under %s", c.Path)
		return nil
	}
	if err := engine.WriteOutput(c.OutputFile, engine.Render(entries)); err != nil {
		return err
	}
	log.Noticef("Converted ignore properties of %d directories to %s", len(entries), c.OutputFile)
	return nil
}
