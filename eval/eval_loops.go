/*
File    : lox/eval/eval_loops.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/lox/parser"

// execWhile implements While(condition, body, is_for_loop). A Break exits
// the loop (yielding Normal to the caller); a Continue loops immediately
// unless is_for_loop is set, in which case the desugared body block's
// trailing increment statement is re-run first, since otherwise a `for`'s
// increment clause would never fire on a `continue`d iteration. A Return
// propagates straight out to the nearest call boundary.
func (e *Evaluator) execWhile(st *parser.WhileStmt) (Outcome, error) {
	for {
		cond, err := e.evalExpr(st.Condition)
		if err != nil {
			return normalOutcome, err
		}
		if !cond.IsTruthy() {
			return normalOutcome, nil
		}

		outcome, err := e.execStmt(st.Body)
		if err != nil {
			return normalOutcome, err
		}

		switch outcome.Kind {
		case OutcomeBreak:
			return normalOutcome, nil
		case OutcomeContinue:
			if st.IsForLoop {
				if err := e.runForIncrement(st.Body); err != nil {
					return normalOutcome, err
				}
			}
			// otherwise loop immediately
		case OutcomeReturn:
			return outcome, nil
		}
	}
}

// runForIncrement evaluates the trailing increment statement of a
// desugared for-loop body (Block[body, Expression(incr)]), which a
// Continue caught inside the block would otherwise skip.
func (e *Evaluator) runForIncrement(body parser.Stmt) error {
	block, ok := body.(*parser.BlockStmt)
	if !ok || len(block.Statements) == 0 {
		return nil
	}
	increment := block.Statements[len(block.Statements)-1]
	_, err := e.execStmt(increment)
	return err
}
