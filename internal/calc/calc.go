// Package calc implements the RPN evaluation engine behind the calculator
// interfaces: ten value stacks, a math-operator table over the working
// stack, and register/memory/output commands addressable by digit suffix.
package calc

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/agbru/bigcalc/internal/bigint"
)

// NumRegisters is the number of value stacks. Register 0 is the working
// stack; math operators only touch it.
const NumRegisters = 10

// Engine is one calculator session. It is not safe for concurrent use.
type Engine struct {
	regs [NumRegisters][]*bigint.Int
	hex  bool
	out  io.Writer
}

// New creates an Engine writing its output to out.
func New(out io.Writer) *Engine {
	return &Engine{out: out}
}

// HexMode reports whether results render in hexadecimal.
func (e *Engine) HexMode() bool { return e.hex }

// SetHexMode switches the result rendering base.
func (e *Engine) SetHexMode(hex bool) { e.hex = hex }

// Register returns the rendered values of register i, bottom first.
func (e *Engine) Register(i int) []string {
	if i < 0 || i >= NumRegisters {
		return nil
	}
	vals := make([]string, len(e.regs[i]))
	for j, v := range e.regs[i] {
		vals[j] = e.render(v)
	}
	return vals
}

// render formats one value in the active base.
func (e *Engine) render(v *bigint.Int) string {
	if e.hex {
		return v.Hex()
	}
	return v.String()
}

// top2 pops the two topmost values of register r; ok is false when fewer
// than two values are present (and nothing is popped).
func (e *Engine) top2(r int) (lhs, rhs *bigint.Int, ok bool) {
	vals := e.regs[r]
	if len(vals) < 2 {
		return nil, nil, false
	}
	rhs = vals[len(vals)-1]
	lhs = vals[len(vals)-2]
	e.regs[r] = vals[:len(vals)-2]
	return lhs, rhs, true
}

// top1 pops the topmost value of register r.
func (e *Engine) top1(r int) (*bigint.Int, bool) {
	vals := e.regs[r]
	if len(vals) < 1 {
		return nil, false
	}
	top := vals[len(vals)-1]
	e.regs[r] = vals[:len(vals)-1]
	return top, true
}

func (e *Engine) push(r int, v *bigint.Int) {
	e.regs[r] = append(e.regs[r], v)
}

// binOp pops two operands off the working stack and pushes fn's result.
// When fn fails the operands are pushed back untouched and the failure is
// reported as an exception line.
func (e *Engine) binOp(fn func(lhs, rhs *bigint.Int) (*bigint.Int, error)) {
	lhs, rhs, ok := e.top2(0)
	if !ok {
		return
	}
	res, err := fn(lhs, rhs)
	if err != nil {
		fmt.Fprintf(e.out, "exception: %v\n", err)
		e.push(0, lhs)
		e.push(0, rhs)
		return
	}
	e.push(0, res)
}

// mathOps maps operator tokens to their stack actions.
var mathOps = map[string]func(*Engine){
	"+": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return lhs.Add(rhs), nil
		})
	},
	"-": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return lhs.Sub(rhs), nil
		})
	},
	"*": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return lhs.Mul(rhs), nil
		})
	},
	"**": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return bigint.Pow(lhs, rhs.Int64())
		})
	},
	"/": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return bigint.Div(lhs, rhs)
		})
	},
	"%": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return bigint.Mod(lhs, rhs)
		})
	},
	"/%": func(e *Engine) {
		lhs, rhs, ok := e.top2(0)
		if !ok {
			return
		}
		q, r, err := bigint.DivMod(lhs, rhs)
		if err != nil {
			fmt.Fprintf(e.out, "exception: %v\n", err)
			e.push(0, lhs)
			e.push(0, rhs)
			return
		}
		e.push(0, q)
		e.push(0, r)
	},
	"~": func(e *Engine) {
		if top, ok := e.top1(0); ok {
			e.push(0, top.Not())
		}
	},
	"&": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return lhs.And(rhs), nil
		})
	},
	"|": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return lhs.Or(rhs), nil
		})
	},
	"^": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return lhs.Xor(rhs), nil
		})
	},
	"<<": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return bigint.Shl(lhs, rhs.Int64())
		})
	},
	">>": func(e *Engine) {
		e.binOp(func(lhs, rhs *bigint.Int) (*bigint.Int, error) {
			return bigint.Shr(lhs, rhs.Int64())
		})
	},
}

// mainOps are mode commands without a register suffix.
var mainOps = map[string]func(*Engine){
	"hex":   func(e *Engine) { e.hex = true },
	"dec":   func(e *Engine) { e.hex = false },
	"reset": func(e *Engine) { e.regs = [NumRegisters][]*bigint.Int{} },
}

// regOps are stack-shuffling commands; the digit suffix picks the register.
var regOps = map[string]func(*Engine, int){
	// swap
	"s": func(e *Engine, i int) {
		if lhs, rhs, ok := e.top2(i); ok {
			e.push(i, rhs)
			e.push(i, lhs)
		}
	},
	// rotate up: bottom value moves to the top
	"u": func(e *Engine, i int) {
		if vals := e.regs[i]; len(vals) >= 2 {
			e.regs[i] = append(vals[1:], vals[0])
		}
	},
	// rotate down: top value moves to the bottom
	"d": func(e *Engine, i int) {
		if vals := e.regs[i]; len(vals) >= 2 {
			rotated := make([]*bigint.Int, 0, len(vals))
			rotated = append(rotated, vals[len(vals)-1])
			e.regs[i] = append(rotated, vals[:len(vals)-1]...)
		}
	},
	// pop
	"p": func(e *Engine, i int) {
		e.top1(i)
	},
	// copy the top value
	"c": func(e *Engine, i int) {
		if vals := e.regs[i]; len(vals) >= 1 {
			e.push(i, vals[len(vals)-1].Clone())
		}
	},
}

// memOps move values between the working stack and a storage register;
// the suffix defaults to register 1.
var memOps = map[string]func(*Engine, int){
	"st": func(e *Engine, i int) {
		if top, ok := e.top1(0); ok {
			e.push(i, top)
		}
	},
	"ld": func(e *Engine, i int) {
		if top, ok := e.top1(i); ok {
			e.push(0, top)
		}
	},
}

// outOps render a register (or quit) once the rest of the line has been
// evaluated. They report whether the session should end.
var outOps = map[string]func(*Engine, int) bool{
	"l":    (*Engine).outList,
	"t":    (*Engine).outTop,
	"h":    (*Engine).outHelp,
	"quit": func(*Engine, int) bool { return true },
}

// outList prints every value of register i, bottom first.
func (e *Engine) outList(i int) bool {
	for _, v := range e.regs[i] {
		fmt.Fprintln(e.out, e.render(v))
	}
	return false
}

// outTop prints the top two values of register i.
func (e *Engine) outTop(i int) bool {
	vals := e.regs[i]
	from := 0
	if len(vals) > 2 {
		from = len(vals) - 2
	}
	for _, v := range vals[from:] {
		fmt.Fprintln(e.out, e.render(v))
	}
	return false
}

// outHelp prints the command reference.
func (e *Engine) outHelp(int) bool {
	fmt.Fprint(e.out, "There are 10 stacks. 0 is the primary stack and math ops are\n"+
		"only available to stack 0. l, t, and stack ops default to 0,\n"+
		"and memory ops default to 1. But those ops can be applied to\n"+
		"a specific stack by adding a digit suffix to the op (e.g. s1\n"+
		"to swap on stack 1).\n"+
		"\n"+
		"math ops:\n"+
		"    +, -, *, **, /, %, /%, ~, &, |, ^, <<, >>\n"+
		"stack ops:\n"+
		"    s (swap), u (rotate up), d (rotate down), p (pop), c (copy)\n"+
		"memory ops:\n"+
		"    st (store), ld (load)\n"+
		"output ops:\n"+
		"    l (list), t (top), dec, hex\n"+
		"reset (to clear everything), quit (to quit)\n")
	return false
}

// splitSuffix separates a single trailing register digit from an op token.
func splitSuffix(tok string) (op string, idx int, hasIdx bool) {
	last := tok[len(tok)-1]
	if last >= '0' && last <= '9' {
		return tok[:len(tok)-1], int(last - '0'), true
	}
	return tok, 0, false
}

// EvalLine evaluates one input line and renders the pending output op
// (top-of-stack by default). It reports whether a quit was requested.
func (e *Engine) EvalLine(line string) (quit bool) {
	lastIdx := 0
	outOp := "t"
	for _, tok := range strings.Fields(line) {
		lastIdx = 0
		outOp = "t"
		if r := rune(tok[0]); unicode.IsLetter(r) {
			op, idx, hasIdx := splitSuffix(tok)
			if fn, ok := mainOps[op]; ok {
				fn(e)
				continue
			}
			if fn, ok := regOps[op]; ok {
				lastIdx = idx
				fn(e, idx)
				continue
			}
			if fn, ok := memOps[op]; ok {
				if !hasIdx {
					idx = 1
				}
				fn(e, idx)
				continue
			}
			if _, ok := outOps[op]; ok {
				lastIdx = idx
				outOp = op
				continue
			}
		}
		if fn, ok := mathOps[tok]; ok {
			fn(e)
			continue
		}
		if v, err := bigint.ParseDecimal(tok); err == nil {
			e.push(0, v)
			continue
		}
		if v, err := bigint.ParseHex(tok); err == nil {
			e.push(0, v)
			continue
		}
		fmt.Fprintf(e.out, "unknown op %s\n", tok)
	}
	if fn, ok := outOps[outOp]; ok {
		return fn(e, lastIdx)
	}
	return false
}
