package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// HexOutput starts the session in hexadecimal display mode.
	HexOutput bool
}

// REPL represents an interactive calculator session.
type REPL struct {
	config REPLConfig
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance reading from stdin and writing to
// stdout.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start begins the interactive session. It continuously reads input lines
// and evaluates them until the user quits or EOF is reached.
func (r *REPL) Start() {
	engine := calc.New(r.out)
	engine.SetHexMode(r.config.HexOutput)

	r.printBanner()
	fmt.Fprintf(r.out, "welcome, enter %sh%s for help\n", ui.ColorYellow(), ui.ColorReset())

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"> "+ui.ColorReset())

		line, err := reader.ReadString('\n')
		if err != nil {
			if len(strings.TrimSpace(line)) > 0 {
				// Evaluate a final unterminated line before leaving.
				engine.EvalLine(line)
			}
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			}
			fmt.Fprintf(r.out, "\ngoodbye\n")
			return
		}

		if engine.EvalLine(line) {
			fmt.Fprintf(r.out, "%sgoodbye%s\n", ui.ColorGreen(), ui.ColorReset())
			return
		}
	}
}

// printBanner displays the welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s  %sbigcalc — arbitrary-precision RPN calculator%s       %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════╝%s\n", ui.ColorCyan(), ui.ColorReset())
}
