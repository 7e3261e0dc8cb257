package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mwhitmore/book-cataloguing/pkg/cataloguing"
)

func main() {
	lists, err := cataloguing.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word lists: %v\n", err)
		os.Exit(1)
	}
	engine := cataloguing.New(lists)

	// If a command and text are provided, transform and exit.
	if len(os.Args) > 2 {
		command := os.Args[1]
		text := strings.Join(os.Args[2:], " ")

		out, err := run(engine, command, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}
	if len(os.Args) == 2 {
		printUsage()
		os.Exit(1)
	}

	// Interactive mode
	fmt.Println("Book cataloguing (interactive mode)")
	fmt.Println("Type a title or author name, press Enter to normalize. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		result := map[string]string{
			"title":      engine.CapitalizeTitle(text),
			"title_key":  engine.SortableTitle(text),
			"author":     engine.CapitalizeAuthor(text),
			"author_key": "",
		}
		if key, err := engine.SortableAuthor(text); err == nil {
			result["author_key"] = key
		}

		output, _ := json.Marshal(result)
		fmt.Printf("  %s\n\n", output)
	}
}

func run(engine *cataloguing.Engine, command, text string) (string, error) {
	switch command {
	case "title":
		return engine.CapitalizeTitle(text), nil
	case "author":
		return engine.CapitalizeAuthor(text), nil
	case "title-key":
		return engine.SortableTitle(text), nil
	case "author-key":
		return engine.SortableAuthor(text)
	}
	printUsage()
	return "", fmt.Errorf("unknown command: %s", command)
}

func printUsage() {
	fmt.Println("Usage: catalogue <command> <text...>")
	fmt.Println("       catalogue                      (interactive mode)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  title <text>       Capitalize a book title")
	fmt.Println("  author <text>      Capitalize an author name")
	fmt.Println("  title-key <text>   Derive the sortable title key")
	fmt.Println("  author-key <text>  Derive the sortable author string")
}
