package main

import (
	"fmt"
	"os"

	"github.com/mwhitmore/book-cataloguing/pkg/cataloguing"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	lists, err := cataloguing.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word lists: %v\n", err)
		os.Exit(1)
	}

	if os.Args[1] == "stats" {
		printStats(lists)
		return
	}

	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	category := os.Args[1]
	command := os.Args[2]

	set, load := resolveCategory(lists, category)
	if set == nil {
		fmt.Printf("Unknown category: %s\n", category)
		printUsage()
		os.Exit(1)
	}

	switch command {
	case "contains":
		if len(os.Args) < 4 {
			fmt.Println("Error: contains requires a word")
			os.Exit(1)
		}
		word := os.Args[3]
		if set().Contains(word) {
			fmt.Printf("'%s' is in %s\n", word, category)
		} else {
			fmt.Printf("'%s' NOT in %s\n", word, category)
			os.Exit(1)
		}

	case "reload":
		path := ""
		if len(os.Args) > 3 {
			path = os.Args[3]
		}
		if err := load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading %s: %v\n", category, err)
			os.Exit(1)
		}
		source := path
		if source == "" {
			source = "built-in default"
		}
		fmt.Printf("Reloaded %s from %s: %d words\n", category, source, set().Len())

	case "stats":
		fmt.Printf("Category: %s\n", category)
		fmt.Printf("Word count: %d\n", set().Len())

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func resolveCategory(lists *cataloguing.Registry, category string) (func() *cataloguing.WordSet, func(string) error) {
	switch category {
	case "title-words":
		return lists.TitleWords, lists.LoadTitleWords
	case "author-words":
		return lists.AuthorWords, lists.LoadAuthorWords
	case "mac-surnames":
		return lists.MacSurnames, lists.LoadMacSurnames
	case "author-titles":
		return lists.AuthorTitles, lists.LoadAuthorTitles
	}
	return nil, nil
}

func printStats(lists *cataloguing.Registry) {
	fmt.Printf("title-words:   %d words\n", lists.TitleWords().Len())
	fmt.Printf("author-words:  %d words\n", lists.AuthorWords().Len())
	fmt.Printf("mac-surnames:  %d words\n", lists.MacSurnames().Len())
	fmt.Printf("author-titles: %d words\n", lists.AuthorTitles().Len())
}

func printUsage() {
	fmt.Println("Usage: listmgr stats")
	fmt.Println("       listmgr <category> <command> [args...]")
	fmt.Println()
	fmt.Println("Categories:")
	fmt.Println("  title-words, author-words, mac-surnames, author-titles")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  contains <word>  Check if a word is in the list")
	fmt.Println("  reload [path]    Replace the list from a file (default: built-in)")
	fmt.Println("  stats            Show list statistics")
}
