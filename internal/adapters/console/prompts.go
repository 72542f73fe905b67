package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// readLine prompts and returns one trimmed input line. On end of
// input the eof flag is set and the empty string returned; handlers
// bail out and the menu loop exits.
func (c *Console) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		c.eof = true
	}
	return strings.TrimSpace(line)
}

func (c *Console) readInt(prompt string) (int, bool) {
	s := c.readLine(prompt)
	if c.eof {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		c.fail("%q is not a number", s)
		return 0, false
	}
	return n, true
}

func (c *Console) readPrice(prompt string) (decimal.Decimal, bool) {
	s := c.readLine(prompt)
	if c.eof {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		c.fail("%q is not a valid price", s)
		return decimal.Zero, false
	}
	return d, true
}

func (c *Console) confirm(prompt string) bool {
	s := c.readLine(prompt + " (Y/N): ")
	return strings.EqualFold(s, "y")
}

func (c *Console) pause() {
	c.readLine("\nPress Enter to continue...")
}
