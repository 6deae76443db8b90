// pdftext extracts plain text from PDF files into .txt files alongside
// the sources.
//
// Usage:
//
//	pdftext <file.pdf>     extract a single file
//	pdftext <directory>    extract every *.pdf in the directory
//	pdftext                extract every *.pdf in the current directory
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	svgpdf "github.com/porticus-lab/go-svg-pdf"
)

func main() {
	arg := "."
	switch len(os.Args) {
	case 1:
	case 2:
		if os.Args[1] == "-h" || os.Args[1] == "--help" {
			printUsage()
			return
		}
		arg = os.Args[1]
	default:
		printUsage()
		os.Exit(2)
	}

	if err := run(arg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`pdftext - extract plain text from PDF files

Usage:
  pdftext <file.pdf>     extract a single file
  pdftext <directory>    extract every *.pdf in the directory
  pdftext                extract every *.pdf in the current directory

Each source.pdf produces a source.txt next to it.
`)
}

func run(arg string) error {
	files, err := findPDFs(arg)
	if err != nil {
		return err
	}
	if len(files) > 1 {
		fmt.Printf("found %d PDF files to process\n\n", len(files))
	}

	for _, src := range files {
		if err := extractOne(src); err != nil {
			// Unreadable files are reported but do not stop the batch.
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", src, err)
		}
	}
	return nil
}

// findPDFs resolves the CLI argument to the list of PDF files to
// process. A named file must exist and carry a .pdf extension; a
// directory (or no argument) must contain at least one.
func findPDFs(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("file %s not found", arg)
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(arg), ".pdf") {
			return nil, fmt.Errorf("%s is not a PDF file", arg)
		}
		return []string{arg}, nil
	}

	matches, err := filepath.Glob(filepath.Join(arg, "*.pdf"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", arg)
	}
	return matches, nil
}

func extractOne(src string) error {
	fmt.Printf("processing %s...\n", filepath.Base(src))

	info, err := svgpdf.ReadInfo(src)
	if err != nil {
		return err
	}
	summary := fmt.Sprintf("  %d pages", info.Pages)
	if len(info.Sizes) > 0 && info.Sizes[0].Width > 0 {
		summary += fmt.Sprintf(", %.0f x %.0f pt", info.Sizes[0].Width, info.Sizes[0].Height)
	}
	fmt.Println(summary)

	pages, err := svgpdf.ExtractPages(src)
	if err != nil {
		return err
	}

	text := strings.Join(pages, "\n")
	outPath := strings.TrimSuffix(src, filepath.Ext(src)) + ".txt"
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return err
	}

	fmt.Printf("  wrote %s (%d characters)\n", outPath, len(text))
	return nil
}
