package ini_test

import (
	"context"
	"fmt"

	"github.com/ardnew/iniq/ini"
)

func ExampleParseString() {
	const src = `
timeout=30
# connection settings
[server]
host = localhost
port = 8080
`

	doc, err := ini.ParseString(context.Background(), src)
	if err != nil {
		panic(err)
	}

	if item, ok := doc.Get("timeout"); ok {
		fmt.Println("timeout:", item.Value)
	}

	if item, ok := doc.Lookup("server", "host"); ok {
		fmt.Println("host:", item.Value)
	}

	// Output:
	// timeout: 30
	// host: localhost
}

func ExampleDocument_Sections() {
	const src = `
[alpha]
a=1
[beta]
b=2
`

	doc, err := ini.ParseString(context.Background(), src)
	if err != nil {
		panic(err)
	}

	for section := range doc.Sections() {
		fmt.Println(section.Name(), section.Len())
	}

	// Output:
	// alpha 1
	// beta 2
}

func ExampleDocument_Warnings() {
	doc, err := ini.ParseString(context.Background(), "[]\nkey=1\ngibberish\n")
	if err != nil {
		panic(err)
	}

	for _, w := range doc.Warnings() {
		fmt.Printf("line %d: %s\n", w.Line, w.Kind)
	}

	// Output:
	// line 1: malformed section header
	// line 3: unrecognized line
}
