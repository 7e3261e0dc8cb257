package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mwhitmore/book-cataloguing/pkg/cataloguing"
	"github.com/mwhitmore/book-cataloguing/pkg/numwords"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	fmt.Print("Loading word lists... ")
	start := time.Now()
	lists, err := cataloguing.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	engine := cataloguing.New(lists)
	fmt.Printf("done (%v)\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	title := "the hobbit: or, there and back again"
	numberTitle := "the 1,001 nights"
	author := "cormac mccarthy"
	titles := []string{
		"The 3 Musketeers", "Of Mice and Men", "A Tale of Two Cities",
		"henry vi, part ii", "the thirteen-gun salute",
	}

	// Full pipeline benchmarks
	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Capitalize title", func() { engine.CapitalizeTitle(title) })
	bench("Capitalize author", func() { engine.CapitalizeAuthor(author) })
	bench("Sortable title", func() { engine.SortableTitle(title) })
	bench("Sortable author", func() { engine.SortableAuthor(author) })
	bench("Sort 5 titles", func() {
		batch := make([]string, len(titles))
		copy(batch, titles)
		engine.SortTitles(batch, false)
	})
	printFooter()
	fmt.Println()

	// Component breakdown
	printHeader("COMPONENT BREAKDOWN")
	bench("Segment (lossless)", func() { cataloguing.Segment(title, false) })
	bench("Segment (words only)", func() { cataloguing.Segment(author, true) })
	bench("Lookup contains", func() { lists.TitleWords().Contains("the") })
	bench("Number expansion", func() { engine.SortableTitle(numberTitle) })
	bench("Spell number", func() { numwords.Convert(1001) })

	engine.ClearCache()
	engine.SortTitles(append([]string(nil), titles...), false)
	bench("Sort (cache hit)", func() {
		batch := make([]string, len(titles))
		copy(batch, titles)
		engine.SortTitles(batch, false)
	})
	bench("Sort (cache miss)", func() {
		engine.ClearCache()
		batch := make([]string, len(titles))
		copy(batch, titles)
		engine.SortTitles(batch, false)
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
