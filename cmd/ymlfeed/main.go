package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	yml "github.com/Divaltor/yandex-market-language"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "convert":
		convertCmd(os.Args[2:])
	case "dump":
		dumpCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `ymlfeed CLI

Usage:
  ymlfeed convert -i feed.yaml -o feed.xml
  ymlfeed dump -i feed.xml [-clean]
  ymlfeed validate -i feed.xml [-stream]`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	in := fs.String("i", "", "input YAML feed definition")
	out := fs.String("o", "", "output feed XML path (default stdout)")
	_ = fs.Parse(args)
	if *in == "" {
		fs.Usage()
		os.Exit(2)
	}

	feed, err := loadFeedDefinition(*in)
	if err != nil {
		fatalf("convert: %v", err)
	}
	if *out == "" {
		if err := feed.WriteXML(os.Stdout); err != nil {
			fatalf("convert: %v", err)
		}
		fmt.Println()
		return
	}
	if err := feed.WriteFile(*out); err != nil {
		fatalf("convert: %v", err)
	}
}

func dumpCmd(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	in := fs.String("i", "", "input feed XML")
	clean := fs.Bool("clean", false, "drop absent fields from the output")
	_ = fs.Parse(args)
	if *in == "" {
		fs.Usage()
		os.Exit(2)
	}

	feed, err := yml.ParseFeedFile(*in)
	if err != nil {
		fatalf("dump: %v", err)
	}
	d := feed.Dict()
	if *clean {
		d = d.Clean()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		fatalf("dump: %v", err)
	}
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	in := fs.String("i", "", "input feed XML")
	stream := fs.Bool("stream", false, "use the streaming decoder")
	_ = fs.Parse(args)
	if *in == "" {
		fs.Usage()
		os.Exit(2)
	}

	file, err := os.Open(*in)
	if err != nil {
		fatalf("validate: %v", err)
	}
	defer file.Close()

	if *stream {
		_, err = yml.ParseShopStream(file)
	} else {
		_, err = yml.ParseFeed(file)
	}
	if err != nil {
		fatalf("validate: %s: %v", *in, err)
	}
	fmt.Printf("%s: ok\n", *in)
}

func loadFeedDefinition(path string) (*yml.Feed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read definition")
	}
	var def feedDef
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, errors.Wrap(err, "parse definition")
	}
	return def.build()
}
