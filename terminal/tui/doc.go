// Package tui composes drawables on a terminal canvas through a split-pane frame tree.
//
// A Frame is a rectangle that is either a leaf or split once into two children that
// overlap by one row or column, so neighbouring panes share a border line.
// Drawing runs three post-order passes over the tree: borders, then joints where a
// split seam meets its parent's border, then drawables clipped to each frame's
// interior box.
//
// Usage pattern:
//
//	scr := sess.NewScreen()
//	w, h := scr.Size()
//	root := tui.NewFrame(w, h, 0, 0)
//	left, right := root.Split(w/3, tui.Vertical)
//	left.Add(stats)
//	top, bottom := right.Split(h/2, tui.Horizontal)
//	top.Add(canvas)
//	bottom.Add(log)
//
//	root.Draw(scr)
//	scr.Flush()
package tui
