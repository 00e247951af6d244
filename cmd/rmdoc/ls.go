package main

import (
	"fmt"

	"github.com/akeil/rmdoc"
	"github.com/akeil/rmdoc/internal/config"
)

func doLs(s config.Settings, format, match string, pinned bool) error {
	root, err := rmdoc.BuildTree(s.Store)
	if err != nil {
		return err
	}

	filters := make([]rmdoc.NodeFilter, 0)
	if match != "" {
		filters = append(filters, rmdoc.IsDocument, rmdoc.MatchPath(match))
	}
	if pinned {
		filters = append(filters, rmdoc.IsPinned)
	}

	root = root.Filtered(filters...)

	if len(root.Children) == 0 {
		fmt.Println("Found no matching notebooks.")
		return nil
	}

	root.Sort(rmdoc.DefaultSort)

	fmt.Println("reMarkable Notebooks")
	fmt.Println("--------------------")

	switch format {
	case "tree":
		showTree(root, 0)
	case "list":
		showList(root)
	default:
		return fmt.Errorf("unsupported format, choose one of 'tree', 'list'")
	}

	return nil
}

func showList(n *rmdoc.Node) {
	dateFormat := "Jan 02 2006, 15:04"

	show := func(n *rmdoc.Node) error {
		if n.Root() {
			return nil
		}

		if n.Leaf() {
			fmt.Print(" ")
		} else {
			fmt.Print("d")
		}

		if n.Pinned() {
			fmt.Print("*")
		} else {
			fmt.Print(" ")
		}

		fmt.Print(" ")
		if n.LastModified().IsZero() {
			fmt.Print("                  ")
		} else {
			fmt.Print(n.LastModified().Local().Format(dateFormat))
		}
		fmt.Print(" | ")
		fmt.Print(n.Name())
		if n.Leaf() {
			fmt.Printf(" (%d pages)", n.Document().PageCount())
		}
		fmt.Println()

		return nil
	}
	n.Walk(show)
}

func showTree(n *rmdoc.Node, level int) {
	if level > 0 {
		for i := 1; i < level; i++ {
			fmt.Print("  ")
		}

		if n.Leaf() {
			fmt.Print("- ")
		} else {
			fmt.Print("+ ")
		}

		fmt.Print(n.Name())
		if n.Pinned() {
			fmt.Print(" *")
		}

		fmt.Println()
	}

	if !n.Leaf() {
		for _, c := range n.Children {
			showTree(c, level+1)
		}
	}
}
