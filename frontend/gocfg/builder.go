package gocfg

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// ParseFunction parses the first function_declaration or method_declaration
// found in src and returns its control flow graph. It is a convenience
// wrapper over Build for callers with a single function per file (the
// regen CLI subcommand); multi-function files should walk the tree
// themselves and call Build per declaration, as the instrument CLI
// subcommand does.
func ParseFunction(ctx context.Context, src []byte) (*FunctionCFG, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("gocfg: parse source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	decl := findFunctionDecl(root)
	if decl == nil {
		return nil, fmt.Errorf("gocfg: no function or method declaration found")
	}
	return Build(decl, src)
}

func findFunctionDecl(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "function_declaration", "method_declaration":
			return child
		}
	}
	return nil
}

func declName(decl *sitter.Node, src []byte) string {
	if name := decl.ChildByFieldName("name"); name != nil {
		return name.Content(src)
	}
	return "<anonymous>"
}

// Build constructs a FunctionCFG from a function_declaration or
// method_declaration tree-sitter node.
func Build(decl *sitter.Node, src []byte) (*FunctionCFG, error) {
	body := decl.ChildByFieldName("body")
	if body == nil {
		return nil, fmt.Errorf("gocfg: declaration %q has no body (external/assembly function)", declName(decl, src))
	}

	cfg := &FunctionCFG{Name: declName(decl, src)}
	b := &builder{cfg: cfg, src: src}

	entry := b.newBlock()
	cfg.EntryID = entry.ID

	exit := b.newBlock()
	b.exitID = exit.ID

	last := b.walkBlock(body, entry)
	if last != nil && !last.Returns {
		b.link(last, exit)
	}
	return cfg, nil
}

type builder struct {
	cfg    *FunctionCFG
	src    []byte
	exitID int
}

func (b *builder) newBlock() *Block {
	blk := &Block{ID: len(b.cfg.List)}
	b.cfg.List = append(b.cfg.List, blk)
	return blk
}

func (b *builder) link(from *Block, to *Block) {
	from.Successors = append(from.Successors, to.ID)
}

// walkBlock processes the statements of a tree-sitter "block" node
// (or a bare statement list), threading control flow through cur, and
// returns the block control falls into after the last statement, or
// nil if every path out of the block already returned.
func (b *builder) walkBlock(block *sitter.Node, cur *Block) *Block {
	for i := 0; i < int(block.NamedChildCount()); i++ {
		if cur == nil {
			return nil // unreachable statements after an unconditional return
		}
		stmt := block.NamedChild(i)
		cur = b.walkStatement(stmt, cur)
	}
	return cur
}

func (b *builder) walkStatement(stmt *sitter.Node, cur *Block) *Block {
	switch stmt.Type() {
	case "if_statement":
		return b.walkIf(stmt, cur)
	case "for_statement":
		return b.walkFor(stmt, cur)
	case "expression_switch_statement", "type_switch_statement":
		return b.walkSwitch(stmt, cur)
	case "return_statement":
		cur.Returns = true
		b.link(cur, b.cfg.blockByID(b.exitID))
		return nil
	case "block":
		return b.walkBlock(stmt, cur)
	default:
		return cur
	}
}

func (b *builder) walkIf(stmt *sitter.Node, cur *Block) *Block {
	thenBranch := b.newBlock()
	b.link(cur, thenBranch)
	thenOut := b.walkStatement(stmt.ChildByFieldName("consequence"), thenBranch)

	altNode := stmt.ChildByFieldName("alternative")
	var elseOut *Block
	var elseBranch *Block
	if altNode != nil {
		elseBranch = b.newBlock()
		b.link(cur, elseBranch)
		elseOut = b.walkStatement(altNode, elseBranch)
	}

	if altNode == nil {
		// No else: falling through the condition joins directly too.
		join := b.newBlock()
		b.link(cur, join)
		if thenOut != nil {
			b.link(thenOut, join)
		}
		return join
	}

	if thenOut == nil && elseOut == nil {
		return nil // both branches return; nothing falls through
	}
	join := b.newBlock()
	if thenOut != nil {
		b.link(thenOut, join)
	}
	if elseOut != nil {
		b.link(elseOut, join)
	}
	return join
}

func (b *builder) walkFor(stmt *sitter.Node, cur *Block) *Block {
	header := b.newBlock()
	b.link(cur, header)

	bodyNode := stmt.ChildByFieldName("body")
	bodyEntry := b.newBlock()
	b.link(header, bodyEntry)
	bodyOut := b.walkStatement(bodyNode, bodyEntry)
	if bodyOut != nil {
		b.link(bodyOut, header) // back edge closed over the dominating loop header
	}

	exitBlock := b.newBlock()
	b.link(header, exitBlock)
	return exitBlock
}

func (b *builder) walkSwitch(stmt *sitter.Node, cur *Block) *Block {
	join := b.newBlock()
	sawDefault := false

	for i := 0; i < int(stmt.NamedChildCount()); i++ {
		child := stmt.NamedChild(i)
		if child.Type() != "expression_case" && child.Type() != "default_case" && child.Type() != "type_case" {
			continue
		}
		if child.Type() == "default_case" {
			sawDefault = true
		}
		caseBlock := b.newBlock()
		b.link(cur, caseBlock)

		caseOut := caseBlock
		for j := 0; j < int(child.NamedChildCount()); j++ {
			stmtNode := child.NamedChild(j)
			if isCaseExpressionChild(stmtNode) {
				continue
			}
			if caseOut == nil {
				break
			}
			caseOut = b.walkStatement(stmtNode, caseOut)
		}
		if caseOut != nil {
			b.link(caseOut, join)
		}
	}

	if !sawDefault {
		b.link(cur, join) // no case matched
	}
	return join
}

func isCaseExpressionChild(n *sitter.Node) bool {
	switch n.Type() {
	case "expression_list", "type_list":
		return true
	default:
		return false
	}
}
