package main

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"

	"github.com/osuushi/hedra/scene"
)

func inspect(w io.Writer, au aurora.Aurora, path string, dump bool) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	for _, e := range s.Entries {
		fmt.Fprintf(w, "%s %s\n", au.Bold(au.Cyan(e.Name)), au.Faint(fmt.Sprintf("(layer %d)", e.Layer)))
		if dump {
			fmt.Fprintf(w, "%# v\n", pretty.Formatter(e.Shape))
			continue
		}
		fmt.Fprint(w, e.Shape)
		fmt.Fprintln(w)
	}
	return nil
}
