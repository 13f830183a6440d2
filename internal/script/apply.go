package script

import (
	"context"

	"github.com/thirteen37/arraypath/internal/ctxlog"
	"github.com/thirteen37/arraypath/internal/tree"
)

// Apply runs the script's operations against t in order and returns t.
// Operations never fail: missing paths are ignored by delete and a merge of a
// non-mapping value does nothing.
func (s *Script) Apply(ctx context.Context, t *tree.PathTree) *tree.PathTree {
	log := ctxlog.FromContext(ctx)

	for _, op := range s.Ops {
		switch op.Kind {
		case OpSet:
			t.Set(op.Path, op.Value)
		case OpDelete:
			t.Delete(op.Path)
		case OpReset:
			t.Reset()
		case OpSeparator:
			t.SetSeparator(op.Path)
		case OpMerge:
			t.Merge(op.Value)
		}
		log.Debug("applied operation", "line", op.Line, "op", op.Kind.String(), "path", op.Path)
	}
	return t
}
