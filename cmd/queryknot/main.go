// queryknot - QueryKnot format CLI tool
//
// Usage:
//
//	queryknot fmt [file]           Reformat QueryKnot text into canonical form
//	queryknot to-json [file]       Convert QueryKnot text to JSON
//	queryknot from-json [file]     Convert JSON to QueryKnot text
//	queryknot to-yaml [file]       Convert QueryKnot text to YAML
//	queryknot from-yaml [file]     Convert YAML to QueryKnot text
//	queryknot instructions         Print the LLM prompt formatting instructions
//	queryknot version              Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/queryknot/queryknot/queryknot"
)

const version = "0.1.0"

var cli struct {
	Fmt          fmtCmd          `cmd:"" help:"Reformat QueryKnot text into canonical form."`
	ToJSON       toJSONCmd       `cmd:"" name:"to-json" help:"Convert QueryKnot text to JSON."`
	FromJSON     fromJSONCmd     `cmd:"" name:"from-json" help:"Convert a JSON object to QueryKnot text."`
	ToYAML       toYAMLCmd       `cmd:"" name:"to-yaml" help:"Convert QueryKnot text to YAML."`
	FromYAML     fromYAMLCmd     `cmd:"" name:"from-yaml" help:"Convert a YAML mapping to QueryKnot text."`
	Instructions instructionsCmd `cmd:"" help:"Print the LLM prompt formatting instructions."`
	Version      versionCmd      `cmd:"" help:"Print version info."`
}

type inputArg struct {
	File string `arg:"" optional:"" help:"Input file (defaults to stdin)."`
}

// read returns the input text, from the file argument or stdin.
func (a inputArg) read() ([]byte, error) {
	if a.File == "" || a.File == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(a.File)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.File, err)
	}
	return data, nil
}

type fmtCmd struct{ inputArg }

func (c *fmtCmd) Run() error {
	data, err := c.read()
	if err != nil {
		return err
	}
	doc, err := queryknot.Parse(string(data))
	if err != nil {
		return err
	}
	text, err := queryknot.Serialize(doc)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

type toJSONCmd struct {
	inputArg
	Compact bool `help:"Emit compact JSON instead of indented."`
}

func (c *toJSONCmd) Run() error {
	data, err := c.read()
	if err != nil {
		return err
	}
	var out []byte
	if c.Compact {
		out, err = queryknot.ToJSON(string(data))
	} else {
		out, err = queryknot.ToJSONIndent(string(data))
	}
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type fromJSONCmd struct{ inputArg }

func (c *fromJSONCmd) Run() error {
	data, err := c.read()
	if err != nil {
		return err
	}
	text, err := queryknot.FromJSON(data)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

type toYAMLCmd struct{ inputArg }

func (c *toYAMLCmd) Run() error {
	data, err := c.read()
	if err != nil {
		return err
	}
	out, err := queryknot.ToYAML(string(data))
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

type fromYAMLCmd struct{ inputArg }

func (c *fromYAMLCmd) Run() error {
	data, err := c.read()
	if err != nil {
		return err
	}
	text, err := queryknot.FromYAML(data)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

type instructionsCmd struct{}

func (c *instructionsCmd) Run() error {
	fmt.Print(queryknot.Instructions())
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Run() error {
	fmt.Printf("queryknot %s (instructions v%s)\n", version, queryknot.InstructionsVersion)
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("queryknot"),
		kong.Description("Parse, serialize, and convert QueryKnot, the flattened key-value format for LLM output."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "queryknot: %v\n", err)
		os.Exit(1)
	}
}
