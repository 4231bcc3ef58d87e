package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/hedra/scene"
	"github.com/osuushi/hedra/shapes"
)

// Prints every overlapping pair in the scene, then, for each triangle, its
// deepest vertex inside every rectangle it overlaps.
func collide(w io.Writer, au aurora.Aurora, path string, mask uint32) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	world, handles, err := s.World()
	if err != nil {
		return err
	}
	names := make(map[shapes.Handle]string, len(handles))
	for i, h := range handles {
		names[h] = s.Entries[i].Name
	}

	contacts := world.Contacts(shapes.LayerMask(mask))
	if len(contacts) == 0 {
		fmt.Fprintln(w, au.Green("no overlaps"))
		return nil
	}
	for _, c := range contacts {
		fmt.Fprintf(w, "%s overlaps %s: move %s by %v\n",
			au.Bold(names[c.A]), au.Bold(names[c.B]), names[c.A], au.Yellow(c.Offset))
	}

	for i, e := range s.Entries {
		tri, ok := e.Shape.(*shapes.Triangle)
		if !ok {
			continue
		}
		overlapping, err := tri.CheckCollisions(world, shapes.LayerMask(mask))
		if err != nil {
			return err
		}
		for _, h := range overlapping {
			other, _ := world.Shape(h)
			rect, ok := other.(*shapes.Rectangle)
			if !ok {
				continue
			}
			if deepest, found := tri.DeepestVertexIn(rect); found {
				fmt.Fprintf(w, "%s reaches deepest into %s at %v\n", au.Bold(s.Entries[i].Name), au.Bold(names[h]), deepest)
			}
		}
	}
	return nil
}
