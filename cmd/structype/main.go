package main

import (
	"flag"
	"fmt"
	"os"

	structype "github.com/structype/structype"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "describe":
		describeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "structype CLI\n\nUsage:\n  structype describe -f defs.yaml [-schema flat|meta|structured] [-format json|yaml] [-type Name]\n\nNotes:\n  - defs.yaml declares types, members, and their annotations; see the package docs for the format.")
}

func describeCmd(args []string) {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	var file string
	var schemaName string
	var format string
	var typeName string
	fs.StringVar(&file, "f", "", "definition file (yaml)")
	fs.StringVar(&schemaName, "schema", "flat", "description schema: flat, meta, or structured")
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	fs.StringVar(&typeName, "type", "", "describe only the named type")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	schema, err := parseSchemaName(schemaName)
	if err != nil {
		fatalf("%v", err)
	}
	if format != "json" && format != "yaml" {
		fatalf("unknown format %q", format)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("reading definitions: %v", err)
	}
	defs, err := loadDefs(data)
	if err != nil {
		fatalf("%s: %v", file, err)
	}

	matched := false
	for _, def := range defs {
		if typeName != "" && def.Name != typeName {
			continue
		}
		matched = true
		d, err := structype.DescribeTypeDef(def, schema)
		if err != nil {
			fatalf("%s: %v", def.Name, err)
		}
		if format == "yaml" {
			out, err := d.AsYAML()
			if err != nil {
				fatalf("%s: %v", def.Name, err)
			}
			fmt.Print(out)
			continue
		}
		d.PrintFields()
	}
	if !matched {
		fatalf("no type %q in %s", typeName, file)
	}
}

func parseSchemaName(s string) (structype.SchemaKind, error) {
	switch s {
	case "flat":
		return structype.SchemaFlat, nil
	case "meta":
		return structype.SchemaMetaList, nil
	case "structured":
		return structype.SchemaStructured, nil
	}
	return 0, fmt.Errorf("unknown schema %q (want flat, meta, or structured)", s)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
