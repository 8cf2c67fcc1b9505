package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/crunchlang/crunch"
)

type config struct {
	verb string
	prec uint
	echo bool
}

func main() {
	log.SetFlags(0)
	var c config
	flag.StringVar(&c.verb, "fmt", "%g", "result formatting verb")
	flag.UintVar(&c.prec, "p", 0, "bits of precision (0 evaluates in float64)")
	flag.BoolVar(&c.echo, "echo", false, "print parse trees")
	flag.Parse()

	if flag.NArg() > 0 {
		if _, err := c.eval(strings.Join(flag.Args(), "")); err != nil {
			log.Fatal(err)
		}
		return
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		c.repl()
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	code := 0
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		if _, err := c.eval(sc.Text()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = 1
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

// repl reads one expression per line until EOF or a line starting with q.
// The previous successful result threads into the next line when it opens
// with an operator, so "*2" continues from the last answer.
func (c *config) repl() {
	sc := bufio.NewScanner(os.Stdin)
	prev := ""
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "q") {
			return
		}
		r, err := c.eval(thread(line, prev))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if r != "" {
			prev = r
		}
	}
}

// thread prepends the parenthesized previous result when a line opens with
// an operator that has no unary form. Lines opening with + or - are left
// alone, since those are legal signs.
func thread(line, prev string) string {
	if prev == "" || !strings.ContainsRune("*/%^~", rune(line[0])) {
		return line
	}
	return "(" + prev + ")" + line
}

// eval parses and evaluates one expression, printing the result to stdout.
// It returns the result as plain reparseable text, or "" for results like
// Inf that the tokenizer cannot read back.
func (c *config) eval(src string) (string, error) {
	e, err := crunch.ParseString(src)
	if err != nil {
		return "", err
	}
	if c.echo {
		fmt.Printf("%v : ", e)
	}
	if c.prec > 0 {
		r, err := e.EvalBig(crunch.NewContext(crunch.Prec(c.prec)))
		if err != nil {
			return "", err
		}
		fmt.Printf(c.verb+"\n", r)
		if r.IsInf() {
			return "", nil
		}
		return r.Text('f', -1), nil
	}
	r, err := e.Eval()
	if err != nil {
		return "", err
	}
	fmt.Printf(c.verb+"\n", r)
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return "", nil
	}
	return strconv.FormatFloat(r, 'f', -1, 64), nil
}
