package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"tinyc/pkg/build"
	"tinyc/pkg/compiler"
	"tinyc/pkg/utils"
	"tinyc/pkg/vfs"
)

const exampleSource = "(add 2 (subtract 4 2))"

func main() {
	expr := flag.String("e", "", "compile this source string instead of the built-in example")
	showTokens := flag.Bool("tokens", false, "print the token stream")
	showAST := flag.Bool("ast", false, "print the source and target trees as JSON")
	outDir := flag.String("out", "", "directory to write compiled "+build.OutputExt+" files to")
	jobs := flag.Int("j", 0, "maximum concurrent compilations (default GOMAXPROCS)")
	flag.Parse()

	if flag.NArg() > 0 {
		os.Exit(compileFiles(flag.Args(), *outDir, *jobs))
	}

	src := exampleSource
	if *expr != "" {
		src = *expr
	}
	os.Exit(compileSource(src, *showTokens, *showAST))
}

// compileSource runs each stage separately so intermediate results can be shown.
func compileSource(src string, showTokens, showAST bool) int {
	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		return 1
	}
	if showTokens {
		fmt.Printf("Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Println(" ", tok)
		}
		fmt.Println()
	}

	prog, err := compiler.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return 1
	}
	out := compiler.Transform(prog)
	if showAST {
		for _, dump := range []func() ([]byte, error){
			func() ([]byte, error) { return compiler.DumpAST(prog) },
			func() ([]byte, error) { return compiler.DumpTarget(out) },
		} {
			data, err := dump()
			if err != nil {
				fmt.Fprintln(os.Stderr, "dump error:", err)
				return 1
			}
			fmt.Printf("%s\n\n", data)
		}
	}

	code, err := compiler.Generate(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "codegen error:", err)
		return 1
	}

	fmt.Println("Input: ", src)
	fmt.Println("Output:", code)
	return 0
}

func compileFiles(args []string, outDir string, jobs int) int {
	paths, err := utils.ExpandArgs(args, build.SourceExt)
	if err != nil {
		log.Fatalf("Failed to resolve inputs: %v", err)
	}

	disk := vfs.NewVirtualDisk()
	for _, p := range paths {
		name, err := disk.LoadFrom(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read error: %s: %v\n", p, err)
			return 1
		}
		if !strings.HasSuffix(name, build.SourceExt) {
			fmt.Fprintf(os.Stderr, "read error: %s: source files must end in %s\n", p, build.SourceExt)
			return 1
		}
	}

	outputs, err := build.Disk(context.Background(), disk, jobs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "compile error:", err)
		return 1
	}

	for _, name := range outputs {
		data, err := disk.Read(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			return 1
		}
		fmt.Printf("%s: %s\n", name, data)
	}

	if outDir != "" {
		if err := disk.PersistTo(outDir, build.OutputExt); err != nil {
			fmt.Fprintln(os.Stderr, "write error:", err)
			return 1
		}
	}
	return 0
}
