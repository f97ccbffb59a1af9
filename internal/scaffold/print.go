package scaffold

import (
	"fmt"
	"io"
	"strings"
)

// treeNode is one path segment in the printed plan tree.
type treeNode struct {
	name     string
	dir      bool
	children []*treeNode
	index    map[string]*treeNode
}

func (n *treeNode) child(name string) *treeNode {
	if c, ok := n.index[name]; ok {
		return c
	}
	c := &treeNode{name: name, index: make(map[string]*treeNode)}
	n.children = append(n.children, c)
	n.index[name] = c
	return c
}

// buildTree arranges the plan's paths into a tree. Children keep the order
// in which their first path appears in the plan, folders before files.
func buildTree(plan *Plan) *treeNode {
	root := &treeNode{index: make(map[string]*treeNode)}
	insert := func(p string, leafDir bool) {
		parts := strings.Split(p, "/")
		n := root
		for i, part := range parts {
			n = n.child(part)
			if i < len(parts)-1 || leafDir {
				n.dir = true
			}
		}
	}
	for _, f := range plan.Folders {
		insert(f, true)
	}
	for _, f := range plan.Files {
		insert(f, false)
	}
	return root
}

// PrintTree prints the plan's folders and files with box-drawing characters.
func PrintTree(w io.Writer, plan *Plan) {
	root := buildTree(plan)
	for i, c := range root.children {
		printNode(w, c, "", i == len(root.children)-1, true)
	}
}

func printNode(w io.Writer, node *treeNode, prefix string, isLast, top bool) {
	label := node.name
	if node.dir {
		label += "/"
	}

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	// Top-level entries (domain roots) print without a connector.
	if top {
		fmt.Fprintf(w, "  %s\n", label)
	} else {
		fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, label)
	}

	childPrefix := prefix
	if !top {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}

	for i, child := range node.children {
		printNode(w, child, childPrefix, i == len(node.children)-1, false)
	}
}
